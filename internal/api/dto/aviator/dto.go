package aviator

type StateResponse struct {
	RoundID           int64   `json:"round_id"`
	Status            string  `json:"status"` // scheduled|active|crashed
	StartTime         string  `json:"start_time"`
	CurrentMultiplier float64 `json:"current_multiplier"`
	// CrashMultiplier раскрывается только после краша раунда
	CrashMultiplier float64   `json:"crash_multiplier,omitempty"`
	Bet             *BetInfo  `json:"bet,omitempty"` // ставка запрашивающего
	History         []float64 `json:"history"`       // крэш-множители последних раундов
}

type BetInfo struct {
	BetID             int64   `json:"bet_id"`
	AmountMills       int64   `json:"amount_mills"`
	CashedOut         bool    `json:"cashed_out"`
	CashoutMultiplier float64 `json:"cashout_multiplier,omitempty"`
}

type JoinRequest struct {
	AmountMills int64 `json:"amount_mills"` // размер ставки
}

type JoinResponse struct {
	RoundID      int64 `json:"round_id"`
	BetID        int64 `json:"bet_id"`
	AmountMills  int64 `json:"amount_mills"`
	BalanceMills int64 `json:"balance_mills"`
}

type CashoutRequest struct {
	RoundID int64 `json:"round_id"` // 0 - текущий активный раунд
}

type CashoutResponse struct {
	RoundID      int64   `json:"round_id"`
	Multiplier   float64 `json:"multiplier"`
	PayoutMills  int64   `json:"payout_mills"`
	BalanceMills int64   `json:"balance_mills"`
}
