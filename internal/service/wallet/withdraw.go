package wallet

import (
	"context"
	"errors"
	"fmt"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// Withdraw создает заявку на вывод: сумма сразу замораживается
// pending-операцией в леджере, заявку разбирает админ
func (s *serv) Withdraw(ctx context.Context, amountMills int64, payout string) (*model.WithdrawResult, error) {
	if amountMills < s.cfg.MinWithdrawMills() {
		return nil, service.ErrBadRequest
	}

	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.WithdrawResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, chatID)
		if err != nil {
			return err
		}
		if balance < amountMills {
			return service.ErrInsufficientBalance
		}

		balance -= amountMills
		if err := s.userRepo.UpdateBalance(txCtx, chatID, balance); err != nil {
			return err
		}

		if _, err := s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      chatID,
			Type:        model.TxWithdraw,
			Status:      model.TxPending,
			AmountMills: -amountMills,
			Meta:        map[string]any{"payout": payout},
		}); err != nil {
			return err
		}

		reqID, err := s.withdrawals.Create(txCtx, &model.WithdrawalRequest{
			ChatID:      chatID,
			AmountMills: amountMills,
			Payout:      payout,
		})
		if err != nil {
			return err
		}

		res = &model.WithdrawResult{
			RequestID:    reqID,
			BalanceMills: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.adminChatID != 0 {
		s.notifier.Notify(s.adminChatID, fmt.Sprintf("Заявка на вывод #%d: пользователь %d, $%.2f", res.RequestID, chatID, float64(amountMills)/model.MillsPerUSD))
	}

	return res, nil
}

// ApproveWithdrawal подтверждает заявку: pending-операция становится approved
func (s *serv) ApproveWithdrawal(ctx context.Context, requestID int64) error {
	var chatID int64
	var amountMills int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		req, err := s.withdrawals.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if req == nil || req.Status != model.TxPending {
			return service.ErrBadRequest
		}
		chatID, amountMills = req.ChatID, req.AmountMills

		if err := s.withdrawals.SetStatus(txCtx, requestID, model.TxApproved); err != nil {
			return err
		}

		return s.ledger.SetLatestWithdrawStatus(txCtx, req.ChatID, req.AmountMills, model.TxApproved)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(chatID, fmt.Sprintf("Вывод $%.2f одобрен", float64(amountMills)/model.MillsPerUSD))
	return nil
}

// RejectWithdrawal отклоняет заявку и возвращает замороженную сумму
func (s *serv) RejectWithdrawal(ctx context.Context, requestID int64, reason string) error {
	var chatID int64
	var amountMills int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		req, err := s.withdrawals.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if req == nil || req.Status != model.TxPending {
			return service.ErrBadRequest
		}
		chatID, amountMills = req.ChatID, req.AmountMills

		balance, err := s.userRepo.GetBalance(txCtx, req.ChatID)
		if err != nil {
			return err
		}
		if err := s.userRepo.UpdateBalance(txCtx, req.ChatID, balance+req.AmountMills); err != nil {
			return err
		}

		if _, err := s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      req.ChatID,
			Type:        model.TxWithdrawRevert,
			Status:      model.TxApproved,
			AmountMills: req.AmountMills,
			Meta:        map[string]any{"request_id": requestID, "reason": reason},
		}); err != nil {
			return err
		}

		if err := s.ledger.SetLatestWithdrawStatus(txCtx, req.ChatID, req.AmountMills, model.TxRejected); err != nil {
			return err
		}

		return s.withdrawals.SetStatus(txCtx, requestID, model.TxRejected)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(chatID, fmt.Sprintf("Вывод $%.2f отклонен: %s", float64(amountMills)/model.MillsPerUSD, reason))
	return nil
}
