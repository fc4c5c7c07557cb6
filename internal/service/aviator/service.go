package aviator

import (
	"tapify_backend/internal/config"
	"tapify_backend/internal/repository"
	"tapify_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.AviatorConfig
	rounds    repository.RoundRepository
	bets      repository.BetRepository
	userRepo  repository.UserRepository
	ledger    repository.LedgerRepository
	history   repository.RoundHistoryRepository
	txManager trm.Manager
}

func NewAviatorService(
	cfg config.AviatorConfig,
	rounds repository.RoundRepository,
	bets repository.BetRepository,
	userRepo repository.UserRepository,
	ledger repository.LedgerRepository,
	history repository.RoundHistoryRepository,
	txManager trm.Manager,
) service.AviatorService {
	return &serv{
		cfg:       cfg,
		rounds:    rounds,
		bets:      bets,
		userRepo:  userRepo,
		ledger:    ledger,
		history:   history,
		txManager: txManager,
	}
}
