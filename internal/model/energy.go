package model

import "time"

// RechargeEnergy начисляет энергию, накопившуюся с последнего обновления.
// Возвращает true, если состояние пользователя изменилось и его надо сохранить.
func RechargeEnergy(u *User, now time.Time) bool {
	if u.LastEnergyUpdate.IsZero() {
		u.LastEnergyUpdate = now
		return true
	}

	elapsed := now.Sub(u.LastEnergyUpdate).Seconds()
	if elapsed <= 0 {
		return false
	}

	gained := int(elapsed * u.EnergyRegenPerSec)
	if gained <= 0 {
		return false
	}

	e := u.Energy + gained
	if e > u.EnergyMax {
		e = u.EnergyMax
	}
	u.Energy = e
	u.LastEnergyUpdate = now
	return true
}

// WalkCapMills - дневной лимит заработка за шаги.
// Базовый лимит $1.00 при ставке 1 милл/шаг, масштабируется ставкой уровня.
func WalkCapMills(walkRate int64) int64 {
	const baseCap = 1 * MillsPerUSD
	if walkRate < 1 {
		walkRate = 1
	}
	return baseCap * walkRate
}

// SameDay сравнивает календарные даты в UTC
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
