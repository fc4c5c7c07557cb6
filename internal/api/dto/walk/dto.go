package walk

type StepsRequest struct {
	Steps int64 `json:"steps"` // новые шаги с последней синхронизации
}

type StepsResponse struct {
	EarnedMills  int64 `json:"earned_mills"`
	BalanceMills int64 `json:"balance_mills"`
	TotalSteps   int64 `json:"total_steps"`
	CapReached   bool  `json:"cap_reached"` // дневной лимит исчерпан
}

type UpgradeRequest struct {
	Level int `json:"level"` // целевой уровень Walk & Earn
}

type UpgradeResponse struct {
	BalanceMills      int64   `json:"balance_mills"`
	WalkLevel         int     `json:"walk_level"`
	WalkRateMills     int64   `json:"walk_rate_mills"`
	EnergyRegenPerSec float64 `json:"energy_regen_per_sec"`
}
