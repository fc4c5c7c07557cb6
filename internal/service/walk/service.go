package walk

import (
	"tapify_backend/internal/config"
	"tapify_backend/internal/repository"
	"tapify_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.WalkConfig
	tapCfg    config.TapConfig
	userRepo  repository.UserRepository
	ledger    repository.LedgerRepository
	txManager trm.Manager
}

func NewWalkService(
	cfg config.WalkConfig,
	tapCfg config.TapConfig,
	userRepo repository.UserRepository,
	ledger repository.LedgerRepository,
	txManager trm.Manager,
) service.WalkService {
	return &serv{
		cfg:       cfg,
		tapCfg:    tapCfg,
		userRepo:  userRepo,
		ledger:    ledger,
		txManager: txManager,
	}
}
