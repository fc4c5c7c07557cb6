package model

import "time"

// Статусы глобального раунда авиатора.
// Активным может быть не более одного раунда одновременно.
const (
	RoundScheduled = "scheduled"
	RoundActive    = "active"
	RoundCrashed   = "crashed"
)

type Round struct {
	ID              int64
	StartTime       time.Time
	CrashMultiplier float64 // предвычислен при создании, скрыт от игроков до краша
	GrowthPerSec    float64
	Status          string
	CreatedAt       time.Time
	CrashedAt       *time.Time
}

type Bet struct {
	ID                int64
	RoundID           int64
	ChatID            int64
	AmountMills       int64
	CashedOut         bool
	CashoutMultiplier float64 // валидно только при CashedOut
	CreatedAt         time.Time
}

// AviatorState - снимок текущего раунда для клиента
type AviatorState struct {
	Round             *Round
	CurrentMultiplier float64
	Crashed           bool
	Bet               *Bet      // ставка запрашивающего пользователя, если есть
	History           []float64 // крэш-множители последних раундов
}

type JoinResult struct {
	RoundID      int64
	BetID        int64
	AmountMills  int64
	BalanceMills int64
}

type CashoutResult struct {
	RoundID      int64
	Multiplier   float64
	PayoutMills  int64
	BalanceMills int64
}
