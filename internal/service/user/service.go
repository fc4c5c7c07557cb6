package user

import (
	"tapify_backend/internal/config"
	"tapify_backend/internal/repository"
	"tapify_backend/internal/service"
)

type serv struct {
	jwtCfg   config.JWTConfig
	botToken string
	userRepo repository.UserRepository
	ledger   repository.LedgerRepository
}

func NewUserService(
	jwtCfg config.JWTConfig,
	botToken string,
	userRepo repository.UserRepository,
	ledger repository.LedgerRepository,
) service.UserService {
	return &serv{
		jwtCfg:   jwtCfg,
		botToken: botToken,
		userRepo: userRepo,
		ledger:   ledger,
	}
}
