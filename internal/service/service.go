package service

import (
	"context"
	"errors"

	"tapify_backend/internal/model"
)

// Ошибки, которые API транслирует в 4xx
var (
	ErrNoActiveRound       = errors.New("no active round presently")
	ErrBetOutOfRange       = errors.New("bet out of allowed range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyBet          = errors.New("already placed bet for this round")
	ErrNoBet               = errors.New("no bet to cash out")
	ErrAlreadyCashedOut    = errors.New("already cashed out")
	ErrRoundCrashed        = errors.New("round crashed before cashout")
	ErrNotFound            = errors.New("not found")
	ErrNotEnoughEnergy     = errors.New("not enough energy")
	ErrBadRequest          = errors.New("bad request")
)

type AviatorService interface {
	// State - снимок последнего раунда и ставки запрашивающего
	State(ctx context.Context) (*model.AviatorState, error)
	Join(ctx context.Context, amountMills int64) (*model.JoinResult, error)
	// Cashout выводит ставку; roundID = 0 означает текущий активный раунд
	Cashout(ctx context.Context, roundID int64) (*model.CashoutResult, error)
}

type TapService interface {
	Tap(ctx context.Context, count int) (*model.TapResult, error)
}

type WalkService interface {
	Steps(ctx context.Context, steps int64) (*model.StepsResult, error)
	Upgrade(ctx context.Context, targetLevel int) (*model.UpgradeResult, error)
}

type WalletService interface {
	Deposit(ctx context.Context, amountNGN int64) (*model.DepositResult, error)
	// ConfirmDeposit зачисляет успешный платеж из вебхука шлюза, идемпотентно по reference
	ConfirmDeposit(ctx context.Context, chatID int64, reference string, amountKobo int64) error
	Withdraw(ctx context.Context, amountMills int64, payout string) (*model.WithdrawResult, error)
	ApproveWithdrawal(ctx context.Context, requestID int64) error
	RejectWithdrawal(ctx context.Context, requestID int64, reason string) error
}

type UserService interface {
	// Login проверяет initData телеграмовского WebApp и выдает access токен.
	// Для запуска вне Telegram допускается прямой chat_id (поведение дев-режима)
	Login(ctx context.Context, initData string, chatID int64, username string) (*model.AuthData, error)
	Profile(ctx context.Context) (*model.Profile, error)
	Transactions(ctx context.Context) ([]model.Transaction, error)
}

// Notifier шлет пользователю сообщение в Telegram. Реализация может быть выключена
type Notifier interface {
	Notify(chatID int64, text string)
}
