package tap

import (
	"context"
	"errors"
	"time"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// Tap - серверный тап: тратит энергию, начисляет награду через леджер.
// count обрезается в [1, max_per_request]
func (s *serv) Tap(ctx context.Context, count int) (*model.TapResult, error) {
	if count < 1 {
		count = 1
	}
	if count > s.cfg.MaxPerRequest() {
		count = s.cfg.MaxPerRequest()
	}

	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.TapResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.Get(txCtx, chatID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		model.RechargeEnergy(user, now)

		if user.Energy < count {
			return service.ErrNotEnoughEnergy
		}
		user.Energy -= count

		if err := s.userRepo.UpdateEnergy(txCtx, chatID, user.Energy, now); err != nil {
			return err
		}

		earned := s.cfg.RewardMills() * int64(count)
		balance := user.BalanceMills + earned
		if err := s.userRepo.UpdateBalance(txCtx, chatID, balance); err != nil {
			return err
		}

		if _, err := s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      chatID,
			Type:        model.TxTap,
			Status:      model.TxApproved,
			AmountMills: earned,
			Meta:        map[string]any{"count": count},
		}); err != nil {
			return err
		}

		res = &model.TapResult{
			EarnedMills:  earned,
			BalanceMills: balance,
			Energy:       user.Energy,
			EnergyMax:    user.EnergyMax,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
