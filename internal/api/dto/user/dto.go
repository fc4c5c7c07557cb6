package user

type ProfileResponse struct {
	ChatID   int64  `json:"chat_id"`
	Username string `json:"username"`

	BalanceMills int64   `json:"balance_mills"`
	BalanceUSD   float64 `json:"balance_usd"`

	WalkLevel          int   `json:"walk_level"`
	WalkRateMills      int64 `json:"walk_rate_mills"` // миллов за шаг
	TotalSteps         int64 `json:"total_steps"`
	WalkCapMills       int64 `json:"walk_cap_mills"`       // дневной лимит
	WalkRemainingMills int64 `json:"walk_remaining_mills"` // остаток лимита на сегодня

	Energy            int     `json:"energy"`
	EnergyMax         int     `json:"energy_max"`
	EnergyRegenPerSec float64 `json:"energy_regen_per_sec"`
}

type TransactionItem struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	AmountMills int64  `json:"amount_mills"` // со знаком
	CreatedAt   string `json:"created_at"`   // RFC 3339
}

type TransactionsResponse struct {
	Transactions []TransactionItem `json:"transactions"`
}
