package tap

import (
	"tapify_backend/internal/config"
	"tapify_backend/internal/repository"
	"tapify_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.TapConfig
	userRepo  repository.UserRepository
	ledger    repository.LedgerRepository
	txManager trm.Manager
}

func NewTapService(
	cfg config.TapConfig,
	userRepo repository.UserRepository,
	ledger repository.LedgerRepository,
	txManager trm.Manager,
) service.TapService {
	return &serv{
		cfg:       cfg,
		userRepo:  userRepo,
		ledger:    ledger,
		txManager: txManager,
	}
}
