package model

import (
	"testing"
	"time"
)

func TestRechargeEnergy(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	u := &User{
		Energy:            50,
		EnergyMax:         100,
		EnergyRegenPerSec: 0.2,
		LastEnergyUpdate:  now.Add(-100 * time.Second),
	}

	// 100 секунд * 0.2/с = 20 энергии
	if !RechargeEnergy(u, now) {
		t.Fatal("recharge reported no change")
	}
	if u.Energy != 70 {
		t.Errorf("energy %d, want 70", u.Energy)
	}
	if !u.LastEnergyUpdate.Equal(now) {
		t.Errorf("last update not advanced: %v", u.LastEnergyUpdate)
	}
}

func TestRechargeEnergy_ClampsAtMax(t *testing.T) {
	now := time.Now().UTC()
	u := &User{
		Energy:            95,
		EnergyMax:         100,
		EnergyRegenPerSec: 0.2,
		LastEnergyUpdate:  now.Add(-time.Hour),
	}

	RechargeEnergy(u, now)
	if u.Energy != 100 {
		t.Errorf("energy %d, want clamp at 100", u.Energy)
	}
}

func TestRechargeEnergy_NoGain(t *testing.T) {
	now := time.Now().UTC()
	u := &User{
		Energy:            50,
		EnergyMax:         100,
		EnergyRegenPerSec: 0.2,
		LastEnergyUpdate:  now.Add(-time.Second), // 0.2 энергии - меньше единицы
	}

	if RechargeEnergy(u, now) {
		t.Error("sub-unit gain should not change state")
	}
	if u.Energy != 50 {
		t.Errorf("energy %d, want 50", u.Energy)
	}
}

func TestWalkCapMills(t *testing.T) {
	cases := []struct{ rate, want int64 }{
		{1, 1000},   // базовый лимит $1
		{2, 2000},
		{10, 10000},
		{0, 1000},   // некорректная ставка приводится к базовой
	}
	for _, c := range cases {
		if got := WalkCapMills(c.rate); got != c.want {
			t.Errorf("WalkCapMills(%d) = %d, want %d", c.rate, got, c.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 8, 1, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, 8, 2, 0, 1, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("same UTC date reported different")
	}
	if SameDay(a, c) {
		t.Error("different UTC dates reported same")
	}

	// Сравнение в UTC: локальная зона не должна влиять
	loc := time.FixedZone("UTC+3", 3*3600)
	d := time.Date(2026, 8, 2, 1, 0, 0, 0, loc) // 2026-08-01 22:00 UTC
	if !SameDay(a, d) {
		t.Error("zone-shifted time on the same UTC date reported different")
	}
}
