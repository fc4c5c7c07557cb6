package env

import (
	"errors"
	"os"

	"tapify_backend/internal/config"
)

const (
	adminTokenHashEnvName = "ADMIN_TOKEN_HASH"
)

type adminConfig struct {
	tokenHash string
}

// NewAdminConfig читает bcrypt-хэш админского токена.
// Сам токен в окружении не хранится.
func NewAdminConfig() (config.AdminConfig, error) {
	hash := os.Getenv(adminTokenHashEnvName)
	if len(hash) == 0 {
		return nil, errors.New("admin token hash not found")
	}

	return &adminConfig{
		tokenHash: hash,
	}, nil
}

func (cfg *adminConfig) TokenHash() []byte {
	return []byte(cfg.tokenHash)
}
