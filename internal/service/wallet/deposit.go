package wallet

import (
	"context"
	"errors"
	"fmt"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/paystack"

	"github.com/google/uuid"
)

// Deposit инициализирует платеж в шлюзе и пишет pending-операцию в леджер.
// Баланс не меняется до подтверждения вебхуком
func (s *serv) Deposit(ctx context.Context, amountNGN int64) (*model.DepositResult, error) {
	// 1 найра = 1 милл, сравнение прямое
	if amountNGN < s.cfg.MinDepositMills() {
		return nil, service.ErrBadRequest
	}

	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	user, err := s.userRepo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	email := user.Username
	if email == "" {
		email = fmt.Sprintf("%d", chatID)
	}

	reference := uuid.NewString()
	init, err := s.gateway.Initialize(ctx, paystack.InitializeRequest{
		Email:      email + "@tapify.local",
		AmountKobo: amountNGN * 100,
		Reference:  reference,
		Metadata:   map[string]any{"chat_id": chatID},
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.ledger.Add(ctx, &model.Transaction{
		ChatID:      chatID,
		Type:        model.TxDeposit,
		Status:      model.TxPending,
		AmountMills: 0, // зачисление произойдет по вебхуку
		ExternalRef: init.Reference,
	}); err != nil {
		return nil, err
	}

	return &model.DepositResult{
		CheckoutURL: init.AuthorizationURL,
		Reference:   init.Reference,
	}, nil
}

// ConfirmDeposit зачисляет успешный платеж. Идемпотентен по reference:
// повторный вебхук с тем же референсом - no-op
func (s *serv) ConfirmDeposit(ctx context.Context, chatID int64, reference string, amountKobo int64) error {
	if reference == "" || amountKobo <= 0 {
		return service.ErrBadRequest
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.ledger.GetByExternalRef(txCtx, reference)
		if err != nil {
			return err
		}
		if existing != nil && existing.Status == model.TxCompleted {
			return nil
		}

		user, err := s.userRepo.Get(txCtx, chatID)
		if err != nil {
			return err
		}

		// кобо -> найры -> миллы (1 найра = 1 милл)
		mills := amountKobo / 100

		balance := user.BalanceMills + mills
		if err := s.userRepo.UpdateBalance(txCtx, chatID, balance); err != nil {
			return err
		}

		// Платеж, инициированный через Deposit, уже лежит pending-строкой -
		// закрываем ее. Иначе (референс шлюза без нашей инициализации)
		// пишем completed-строку целиком
		if existing != nil {
			return s.ledger.CompleteDeposit(txCtx, reference, mills)
		}

		_, err = s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      chatID,
			Type:        model.TxDeposit,
			Status:      model.TxCompleted,
			AmountMills: mills,
			ExternalRef: reference,
		})
		return err
	})
}
