package user

import (
	"context"
	"time"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// Profile возвращает профиль пользователя с актуальной энергией и остатком
// дневного лимита Walk & Earn
func (s *serv) Profile(ctx context.Context) (*model.Profile, error) {
	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrNotFound
	}

	u, err := s.userRepo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, service.ErrNotFound
	}

	// Доначисляем энергию за время с последнего обновления
	now := time.Now().UTC()
	if model.RechargeEnergy(u, now) {
		if err := s.userRepo.UpdateEnergy(ctx, u.ChatID, u.Energy, u.LastEnergyUpdate); err != nil {
			return nil, err
		}
	}

	dayCap := model.WalkCapMills(u.WalkRate)
	remaining := dayCap
	if model.SameDay(u.StepsCreditedOn, now) {
		remaining = dayCap - u.StepsMillsToday
		if remaining < 0 {
			remaining = 0
		}
	}

	return &model.Profile{
		User:               u,
		WalkCapMills:       dayCap,
		WalkRemainingMills: remaining,
	}, nil
}

// Transactions возвращает последние операции пользователя
func (s *serv) Transactions(ctx context.Context) ([]model.Transaction, error) {
	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrNotFound
	}
	return s.ledger.ListByUser(ctx, chatID, 50)
}
