package converter

import (
	"time"

	"tapify_backend/internal/api/dto/aviator"
	"tapify_backend/internal/api/dto/tap"
	"tapify_backend/internal/api/dto/walk"
	"tapify_backend/internal/model"
)

func ToTapResponse(res *model.TapResult) tap.TapResponse {
	return tap.TapResponse{
		EarnedMills:  res.EarnedMills,
		BalanceMills: res.BalanceMills,
		Energy:       res.Energy,
		EnergyMax:    res.EnergyMax,
	}
}

func ToStepsResponse(res *model.StepsResult) walk.StepsResponse {
	return walk.StepsResponse{
		EarnedMills:  res.EarnedMills,
		BalanceMills: res.BalanceMills,
		TotalSteps:   res.TotalSteps,
		CapReached:   res.CapReached,
	}
}

func ToUpgradeResponse(res *model.UpgradeResult) walk.UpgradeResponse {
	return walk.UpgradeResponse{
		BalanceMills:      res.BalanceMills,
		WalkLevel:         res.WalkLevel,
		WalkRateMills:     res.WalkRate,
		EnergyRegenPerSec: res.EnergyRegenPerSec,
	}
}

func ToAviatorStateResponse(state *model.AviatorState) aviator.StateResponse {
	r := state.Round
	res := aviator.StateResponse{
		RoundID:           r.ID,
		Status:            r.Status,
		StartTime:         r.StartTime.Format(time.RFC3339),
		CurrentMultiplier: state.CurrentMultiplier,
		History:           state.History,
	}
	// Крэш-множитель скрыт, пока раунд не крэшнулся
	if state.Crashed {
		res.Status = model.RoundCrashed
		res.CrashMultiplier = r.CrashMultiplier
	}
	if state.Bet != nil {
		res.Bet = &aviator.BetInfo{
			BetID:             state.Bet.ID,
			AmountMills:       state.Bet.AmountMills,
			CashedOut:         state.Bet.CashedOut,
			CashoutMultiplier: state.Bet.CashoutMultiplier,
		}
	}
	return res
}

func ToJoinResponse(res *model.JoinResult) aviator.JoinResponse {
	return aviator.JoinResponse{
		RoundID:      res.RoundID,
		BetID:        res.BetID,
		AmountMills:  res.AmountMills,
		BalanceMills: res.BalanceMills,
	}
}

func ToCashoutResponse(res *model.CashoutResult) aviator.CashoutResponse {
	return aviator.CashoutResponse{
		RoundID:      res.RoundID,
		Multiplier:   res.Multiplier,
		PayoutMills:  res.PayoutMills,
		BalanceMills: res.BalanceMills,
	}
}
