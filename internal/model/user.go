package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Денежная модель: все суммы в USD хранятся в миллах (тысячных доллара).
// $1 = 1000 миллов = ₦1000, то есть 1 милл = 1 найра.
const (
	MillsPerUSD = 1000
	USDToNGN    = 1000
)

type User struct {
	ChatID   int64 // Telegram chat_id, первичный ключ
	Username string

	BalanceMills int64

	WalkLevel  int
	WalkRate   int64 // миллов за шаг
	TotalSteps int64

	// Счетчик дневного лимита Walk & Earn
	StepsCreditedOn time.Time // дата, за которую накоплен счетчик
	StepsMillsToday int64

	// Персистентная энергия
	Energy            int
	EnergyMax         int
	EnergyRegenPerSec float64
	LastEnergyUpdate  time.Time

	CreatedAt time.Time
}

type UserClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken string
	User        *User
}
