package converter

import (
	"testing"
	"time"

	"tapify_backend/internal/model"
)

func TestToAviatorStateResponse_HidesCrashMultiplier(t *testing.T) {
	round := &model.Round{
		ID:              5,
		StartTime:       time.Now().UTC(),
		CrashMultiplier: 7.77,
		GrowthPerSec:    0.25,
		Status:          model.RoundActive,
	}

	res := ToAviatorStateResponse(&model.AviatorState{
		Round:             round,
		CurrentMultiplier: 1.50,
		Crashed:           false,
	})
	if res.CrashMultiplier != 0 {
		t.Errorf("crash multiplier %.2f leaked before crash", res.CrashMultiplier)
	}
	if res.CurrentMultiplier != 1.50 {
		t.Errorf("current multiplier %.2f, want 1.50", res.CurrentMultiplier)
	}

	res = ToAviatorStateResponse(&model.AviatorState{
		Round:             round,
		CurrentMultiplier: 7.77,
		Crashed:           true,
	})
	if res.CrashMultiplier != 7.77 {
		t.Errorf("crash multiplier %.2f, want 7.77 after crash", res.CrashMultiplier)
	}
	if res.Status != model.RoundCrashed {
		t.Errorf("status %s, want crashed", res.Status)
	}
}

func TestToAviatorStateResponse_CallerBet(t *testing.T) {
	state := &model.AviatorState{
		Round: &model.Round{ID: 1, StartTime: time.Now().UTC(), Status: model.RoundActive, CrashMultiplier: 3},
		Bet:   &model.Bet{ID: 9, AmountMills: 500, CashedOut: true, CashoutMultiplier: 1.80},
	}

	res := ToAviatorStateResponse(state)
	if res.Bet == nil {
		t.Fatal("bet missing from response")
	}
	if res.Bet.BetID != 9 || res.Bet.AmountMills != 500 || !res.Bet.CashedOut || res.Bet.CashoutMultiplier != 1.80 {
		t.Errorf("bet mapped wrong: %+v", res.Bet)
	}
}
