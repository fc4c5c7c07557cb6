package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"tapify_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// gameFile - структура config.yaml с игровыми настройками
type gameFile struct {
	Aviator struct {
		GrowthPerSec     float64 `yaml:"growth_per_sec"`
		RoundDurationSec int     `yaml:"round_duration_sec"`
		InterRoundGapSec int     `yaml:"inter_round_gap_sec"`
		MinBetMills      int64   `yaml:"min_bet_mills"`
		MaxBetMills      int64   `yaml:"max_bet_mills"`
		HistorySize      int     `yaml:"history_size"`
	} `yaml:"aviator"`

	Tap struct {
		RewardMills       int64   `yaml:"reward_mills"`
		MaxPerRequest     int     `yaml:"max_per_request"`
		EnergyMax         int     `yaml:"energy_max"`
		EnergyRegenPerSec float64 `yaml:"energy_regen_per_sec"`
	} `yaml:"tap"`

	Walk struct {
		Levels []struct {
			Level      int   `yaml:"level"`
			RateMills  int64 `yaml:"rate_mills"`
			PriceMills int64 `yaml:"price_mills"`
		} `yaml:"levels"`
	} `yaml:"walk"`

	Wallet struct {
		MinDepositMills  int64 `yaml:"min_deposit_mills"`
		MinWithdrawMills int64 `yaml:"min_withdraw_mills"`
	} `yaml:"wallet"`
}

func loadGameFile(path string) (*gameFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var f gameFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	return &f, nil
}

type aviatorConfig struct {
	growthPerSec  float64
	roundDuration time.Duration
	interRoundGap time.Duration
	minBetMills   int64
	maxBetMills   int64
	historySize   int
}

func NewAviatorConfigFromYAML(path string) (config.AviatorConfig, error) {
	f, err := loadGameFile(path)
	if err != nil {
		return nil, err
	}

	a := f.Aviator
	if a.GrowthPerSec <= 0 {
		return nil, errors.New("aviator growth_per_sec must be positive")
	}
	if a.RoundDurationSec <= 0 {
		return nil, errors.New("aviator round_duration_sec must be positive")
	}
	if a.MinBetMills <= 0 || a.MaxBetMills < a.MinBetMills {
		return nil, errors.New("invalid aviator bet bounds")
	}
	if a.HistorySize <= 0 {
		a.HistorySize = 30
	}

	return &aviatorConfig{
		growthPerSec:  a.GrowthPerSec,
		roundDuration: time.Duration(a.RoundDurationSec) * time.Second,
		interRoundGap: time.Duration(a.InterRoundGapSec) * time.Second,
		minBetMills:   a.MinBetMills,
		maxBetMills:   a.MaxBetMills,
		historySize:   a.HistorySize,
	}, nil
}

func (cfg *aviatorConfig) GrowthPerSec() float64        { return cfg.growthPerSec }
func (cfg *aviatorConfig) RoundDuration() time.Duration { return cfg.roundDuration }
func (cfg *aviatorConfig) InterRoundGap() time.Duration { return cfg.interRoundGap }
func (cfg *aviatorConfig) MinBetMills() int64           { return cfg.minBetMills }
func (cfg *aviatorConfig) MaxBetMills() int64           { return cfg.maxBetMills }
func (cfg *aviatorConfig) HistorySize() int             { return cfg.historySize }

type tapConfig struct {
	rewardMills       int64
	maxPerRequest     int
	energyMax         int
	energyRegenPerSec float64
}

func NewTapConfigFromYAML(path string) (config.TapConfig, error) {
	f, err := loadGameFile(path)
	if err != nil {
		return nil, err
	}

	t := f.Tap
	if t.RewardMills <= 0 {
		return nil, errors.New("tap reward_mills must be positive")
	}
	if t.MaxPerRequest <= 0 {
		t.MaxPerRequest = 50
	}
	if t.EnergyMax <= 0 {
		t.EnergyMax = 100
	}
	if t.EnergyRegenPerSec <= 0 {
		t.EnergyRegenPerSec = 0.2
	}

	return &tapConfig{
		rewardMills:       t.RewardMills,
		maxPerRequest:     t.MaxPerRequest,
		energyMax:         t.EnergyMax,
		energyRegenPerSec: t.EnergyRegenPerSec,
	}, nil
}

func (cfg *tapConfig) RewardMills() int64         { return cfg.rewardMills }
func (cfg *tapConfig) MaxPerRequest() int         { return cfg.maxPerRequest }
func (cfg *tapConfig) EnergyMax() int             { return cfg.energyMax }
func (cfg *tapConfig) EnergyRegenPerSec() float64 { return cfg.energyRegenPerSec }

type walkConfig struct {
	levels map[int]config.WalkLevel
}

func NewWalkConfigFromYAML(path string) (config.WalkConfig, error) {
	f, err := loadGameFile(path)
	if err != nil {
		return nil, err
	}

	if len(f.Walk.Levels) == 0 {
		return nil, errors.New("walk levels not configured")
	}

	levels := make(map[int]config.WalkLevel, len(f.Walk.Levels))
	for _, l := range f.Walk.Levels {
		if l.Level <= 0 || l.RateMills <= 0 {
			return nil, fmt.Errorf("invalid walk level %d", l.Level)
		}
		levels[l.Level] = config.WalkLevel{
			Level:      l.Level,
			RateMills:  l.RateMills,
			PriceMills: l.PriceMills,
		}
	}

	return &walkConfig{levels: levels}, nil
}

func (cfg *walkConfig) Levels() map[int]config.WalkLevel { return cfg.levels }

type walletConfig struct {
	minDepositMills  int64
	minWithdrawMills int64
}

func NewWalletConfigFromYAML(path string) (config.WalletConfig, error) {
	f, err := loadGameFile(path)
	if err != nil {
		return nil, err
	}

	w := f.Wallet
	if w.MinDepositMills <= 0 || w.MinWithdrawMills <= 0 {
		return nil, errors.New("wallet minimums must be positive")
	}

	return &walletConfig{
		minDepositMills:  w.MinDepositMills,
		minWithdrawMills: w.MinWithdrawMills,
	}, nil
}

func (cfg *walletConfig) MinDepositMills() int64  { return cfg.minDepositMills }
func (cfg *walletConfig) MinWithdrawMills() int64 { return cfg.minWithdrawMills }
