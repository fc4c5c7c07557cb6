package converter

import (
	"time"

	"tapify_backend/internal/api/dto/auth"
	"tapify_backend/internal/api/dto/user"
	"tapify_backend/internal/model"
)

func ToLoginResponse(data *model.AuthData) auth.LoginResponse {
	return auth.LoginResponse{
		AccessToken: data.AccessToken,
		ChatID:      data.User.ChatID,
		Username:    data.User.Username,
	}
}

func ToProfileResponse(p *model.Profile) user.ProfileResponse {
	u := p.User
	return user.ProfileResponse{
		ChatID:             u.ChatID,
		Username:           u.Username,
		BalanceMills:       u.BalanceMills,
		BalanceUSD:         float64(u.BalanceMills) / model.MillsPerUSD,
		WalkLevel:          u.WalkLevel,
		WalkRateMills:      u.WalkRate,
		TotalSteps:         u.TotalSteps,
		WalkCapMills:       p.WalkCapMills,
		WalkRemainingMills: p.WalkRemainingMills,
		Energy:             u.Energy,
		EnergyMax:          u.EnergyMax,
		EnergyRegenPerSec:  u.EnergyRegenPerSec,
	}
}

func ToTransactionsResponse(txs []model.Transaction) user.TransactionsResponse {
	items := make([]user.TransactionItem, len(txs))
	for i, tx := range txs {
		items[i] = user.TransactionItem{
			ID:          tx.ID,
			Type:        tx.Type,
			Status:      tx.Status,
			AmountMills: tx.AmountMills,
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		}
	}
	return user.TransactionsResponse{Transactions: items}
}
