package env

import (
	"errors"
	"os"
	"strconv"

	"tapify_backend/internal/config"
)

const (
	botTokenEnvName    = "TELEGRAM_BOT_TOKEN"
	adminChatIDEnvName = "TELEGRAM_ADMIN_CHAT_ID"
)

type telegramConfig struct {
	botToken    string
	adminChatID int64
}

func NewTelegramConfig() (config.TelegramConfig, error) {
	token := os.Getenv(botTokenEnvName)
	if len(token) == 0 {
		return nil, errors.New("telegram bot token not found")
	}

	var adminChatID int64
	if raw := os.Getenv(adminChatIDEnvName); len(raw) > 0 {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("invalid telegram admin chat id")
		}
		adminChatID = parsed
	}

	return &telegramConfig{
		botToken:    token,
		adminChatID: adminChatID,
	}, nil
}

func (cfg *telegramConfig) BotToken() string {
	return cfg.botToken
}

func (cfg *telegramConfig) AdminChatID() int64 {
	return cfg.adminChatID
}
