package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type AdminConfig interface {
	TokenHash() []byte // bcrypt-хэш админского токена
}

type PaystackConfig interface {
	SecretKey() string
	BaseURL() string
}

type TelegramConfig interface {
	BotToken() string
	AdminChatID() int64
}

type AviatorConfig interface {
	GrowthPerSec() float64
	RoundDuration() time.Duration
	InterRoundGap() time.Duration
	MinBetMills() int64
	MaxBetMills() int64
	HistorySize() int
}

type TapConfig interface {
	RewardMills() int64
	MaxPerRequest() int
	EnergyMax() int
	EnergyRegenPerSec() float64
}

// WalkLevel - один уровень прокачки Walk & Earn
type WalkLevel struct {
	Level      int
	RateMills  int64 // миллов за шаг
	PriceMills int64 // цена апгрейда до этого уровня
}

type WalkConfig interface {
	Levels() map[int]WalkLevel
}

type WalletConfig interface {
	MinDepositMills() int64
	MinWithdrawMills() int64
}
