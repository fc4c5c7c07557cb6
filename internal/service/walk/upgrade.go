package walk

import (
	"context"
	"errors"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// Upgrade повышает уровень Walk & Earn до targetLevel.
// Оплачиваются все промежуточные уровни разом; вместе с уровнем
// растет скорость восстановления энергии
func (s *serv) Upgrade(ctx context.Context, targetLevel int) (*model.UpgradeResult, error) {
	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	levels := s.cfg.Levels()
	target, exists := levels[targetLevel]
	if !exists {
		return nil, service.ErrBadRequest
	}

	var res *model.UpgradeResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.Get(txCtx, chatID)
		if err != nil {
			return err
		}

		if targetLevel <= user.WalkLevel {
			return service.ErrBadRequest
		}

		var totalCost int64
		for lvl := user.WalkLevel + 1; lvl <= targetLevel; lvl++ {
			step, exists := levels[lvl]
			if !exists {
				return service.ErrBadRequest
			}
			totalCost += step.PriceMills
		}

		if user.BalanceMills < totalCost {
			return service.ErrInsufficientBalance
		}

		balance := user.BalanceMills - totalCost
		if err := s.userRepo.UpdateBalance(txCtx, chatID, balance); err != nil {
			return err
		}

		if _, err := s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      chatID,
			Type:        model.TxUpgrade,
			Status:      model.TxApproved,
			AmountMills: -totalCost,
			Meta: map[string]any{
				"from": user.WalkLevel, "to": targetLevel,
				"new_rate_mills": target.RateMills,
			},
		}); err != nil {
			return err
		}

		regen := s.tapCfg.EnergyRegenPerSec() * (1 + 0.2*float64(targetLevel-1))
		if err := s.userRepo.UpdateWalk(txCtx, chatID, targetLevel, target.RateMills, regen); err != nil {
			return err
		}

		res = &model.UpgradeResult{
			BalanceMills:      balance,
			WalkLevel:         targetLevel,
			WalkRate:          target.RateMills,
			EnergyRegenPerSec: regen,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
