package tap

type TapRequest struct {
	Count int `json:"count"` // количество тапов, клампится в [1, 50]
}

type TapResponse struct {
	EarnedMills  int64 `json:"earned_mills"`
	BalanceMills int64 `json:"balance_mills"`
	Energy       int   `json:"energy"`
	EnergyMax    int   `json:"energy_max"`
}
