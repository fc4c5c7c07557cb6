package wallet

import (
	"context"

	"tapify_backend/internal/config"
	"tapify_backend/internal/repository"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/paystack"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Gateway - платежный шлюз. Реализуется paystack.Client
type Gateway interface {
	Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeResult, error)
}

type serv struct {
	cfg         config.WalletConfig
	userRepo    repository.UserRepository
	ledger      repository.LedgerRepository
	withdrawals repository.WithdrawalRepository
	gateway     Gateway
	notifier    service.Notifier
	adminChatID int64
	txManager   trm.Manager
}

func NewWalletService(
	cfg config.WalletConfig,
	userRepo repository.UserRepository,
	ledger repository.LedgerRepository,
	withdrawals repository.WithdrawalRepository,
	gateway Gateway,
	notifier service.Notifier,
	adminChatID int64,
	txManager trm.Manager,
) service.WalletService {
	return &serv{
		cfg:         cfg,
		userRepo:    userRepo,
		ledger:      ledger,
		withdrawals: withdrawals,
		gateway:     gateway,
		notifier:    notifier,
		adminChatID: adminChatID,
		txManager:   txManager,
	}
}
