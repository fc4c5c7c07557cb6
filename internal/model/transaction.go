package model

import "time"

// Типы операций в леджере
const (
	TxTap            = "tap"
	TxWalk           = "walk"
	TxUpgrade        = "upgrade"
	TxAviatorBet     = "aviator_bet"
	TxAviatorCashout = "aviator_cashout"
	TxDeposit        = "deposit"
	TxWithdraw       = "withdraw"
	TxWithdrawRevert = "withdraw_revert"
)

// Статусы операций
const (
	TxPending   = "pending"
	TxApproved  = "approved"
	TxCompleted = "completed"
	TxRejected  = "rejected"
)

type Transaction struct {
	ID          int64
	ChatID      int64
	Type        string
	Status      string
	AmountMills int64 // со знаком: списания отрицательные
	ExternalRef string // референс платежного шлюза, пустой если нет
	Meta        map[string]any
	CreatedAt   time.Time
}

type WithdrawalRequest struct {
	ID          int64
	ChatID      int64
	AmountMills int64
	Payout      string // реквизиты для выплаты
	Status      string // pending|approved|rejected
	CreatedAt   time.Time
}

type DepositResult struct {
	CheckoutURL string
	Reference   string
}

type WithdrawResult struct {
	RequestID    int64
	BalanceMills int64
}
