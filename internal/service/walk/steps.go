package walk

import (
	"context"
	"errors"
	"time"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// Steps начисляет заработок за шаги с учетом дневного лимита.
// Счетчик лимита сбрасывается при смене календарной даты
func (s *serv) Steps(ctx context.Context, steps int64) (*model.StepsResult, error) {
	if steps <= 0 {
		return nil, service.ErrBadRequest
	}

	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.StepsResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.Get(txCtx, chatID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if !model.SameDay(user.StepsCreditedOn, now) {
			user.StepsCreditedOn = now
			user.StepsMillsToday = 0
		}

		cap := model.WalkCapMills(user.WalkRate)
		remaining := cap - user.StepsMillsToday
		if remaining <= 0 {
			res = &model.StepsResult{
				BalanceMills: user.BalanceMills,
				TotalSteps:   user.TotalSteps,
				CapReached:   true,
			}
			return nil
		}

		earned := user.WalkRate * steps
		if earned > remaining {
			earned = remaining
		}

		user.TotalSteps += steps
		user.StepsMillsToday += earned
		if err := s.userRepo.UpdateSteps(txCtx, chatID, user.TotalSteps, user.StepsCreditedOn, user.StepsMillsToday); err != nil {
			return err
		}

		balance := user.BalanceMills + earned
		if err := s.userRepo.UpdateBalance(txCtx, chatID, balance); err != nil {
			return err
		}

		if _, err := s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      chatID,
			Type:        model.TxWalk,
			Status:      model.TxApproved,
			AmountMills: earned,
			Meta:        map[string]any{"steps": steps, "rate_mills": user.WalkRate},
		}); err != nil {
			return err
		}

		res = &model.StepsResult{
			EarnedMills:  earned,
			BalanceMills: balance,
			TotalSteps:   user.TotalSteps,
			CapReached:   user.StepsMillsToday >= cap,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
