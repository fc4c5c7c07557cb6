package wallet

type DepositRequest struct {
	AmountNGN int64 `json:"amount_ngn"` // сумма депозита в найрах
}

type DepositResponse struct {
	CheckoutURL string `json:"checkout_url"`
	Reference   string `json:"reference"`
}

type WithdrawRequest struct {
	AmountMills int64  `json:"amount_mills"`
	Payout      string `json:"payout"` // реквизиты для выплаты
}

type WithdrawResponse struct {
	RequestID    int64 `json:"request_id"`
	BalanceMills int64 `json:"balance_mills"`
}

// PaystackEvent - минимальная часть тела вебхука, которую мы читаем
type PaystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"` // в кобо
		Metadata  struct {
			ChatID int64 `json:"chat_id"`
		} `json:"metadata"`
	} `json:"data"`
}
