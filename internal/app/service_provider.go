package app

import (
	"context"
	"net/http"

	adminAPI "tapify_backend/internal/api/admin"
	authAPI "tapify_backend/internal/api/auth"
	aviatorAPI "tapify_backend/internal/api/aviator"
	tapAPI "tapify_backend/internal/api/tap"
	userAPI "tapify_backend/internal/api/user"
	walkAPI "tapify_backend/internal/api/walk"
	walletAPI "tapify_backend/internal/api/wallet"
	"tapify_backend/internal/config"
	"tapify_backend/internal/config/env"
	"tapify_backend/internal/middleware"
	"tapify_backend/internal/notify"
	"tapify_backend/internal/repository"
	"tapify_backend/internal/repository/bet_repo"
	"tapify_backend/internal/repository/history_repo"
	"tapify_backend/internal/repository/ledger_repo"
	"tapify_backend/internal/repository/round_repo"
	"tapify_backend/internal/repository/user_repo"
	"tapify_backend/internal/repository/withdrawal_repo"
	"tapify_backend/internal/service"
	"tapify_backend/internal/service/aviator"
	"tapify_backend/internal/service/tap"
	"tapify_backend/internal/service/user"
	"tapify_backend/internal/service/walk"
	"tapify_backend/internal/service/wallet"
	"tapify_backend/pkg/paystack"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// User bits
	jwtCfg      config.JWTConfig
	telegramCfg config.TelegramConfig
	userRepo    repository.UserRepository
	userServ    service.UserService
	authHand    *authAPI.Handler
	userHand    *userAPI.Handler

	// Ledger
	ledgerRepo repository.LedgerRepository

	// Tap bits
	tapCfg  config.TapConfig
	tapServ service.TapService
	tapHand *tapAPI.Handler

	// Walk bits
	walkCfg  config.WalkConfig
	walkServ service.WalkService
	walkHand *walkAPI.Handler

	// Aviator bits
	aviatorCfg  config.AviatorConfig
	roundRepo   repository.RoundRepository
	betRepo     repository.BetRepository
	historyRepo repository.RoundHistoryRepository
	aviatorServ service.AviatorService
	engine      *aviator.Engine
	aviatorHand *aviatorAPI.Handler

	// Wallet bits
	walletCfg      config.WalletConfig
	paystackCfg    config.PaystackConfig
	withdrawalRepo repository.WithdrawalRepository
	notifier       service.Notifier
	walletServ     service.WalletService
	walletHand     *walletAPI.Handler

	// Admin bits
	adminCfg  config.AdminConfig
	adminHand *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) TelegramCfg() config.TelegramConfig {
	if sp.telegramCfg == nil {
		cfg, err := env.NewTelegramConfig()
		if err != nil {
			panic("failed to get telegram config: " + err.Error())
		}
		sp.telegramCfg = cfg
	}
	return sp.telegramCfg
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) PaystackCfg() config.PaystackConfig {
	if sp.paystackCfg == nil {
		cfg, err := env.NewPaystackConfig()
		if err != nil {
			panic("failed to get paystack config: " + err.Error())
		}
		sp.paystackCfg = cfg
	}
	return sp.paystackCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) LedgerRepo(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = user.NewUserService(sp.JWTCfg(), sp.TelegramCfg().BotToken(), sp.UserRepo(ctx), sp.LedgerRepo(ctx))
	}
	return sp.userServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.UserService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Serv: sp.UserService(ctx)})
	}
	return sp.userHand
}

func (sp *ServiceProvider) TapCfg() config.TapConfig {
	if sp.tapCfg == nil {
		cfg, err := env.NewTapConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get tap config: " + err.Error())
		}
		sp.tapCfg = cfg
	}
	return sp.tapCfg
}

func (sp *ServiceProvider) TapService(ctx context.Context) service.TapService {
	if sp.tapServ == nil {
		sp.tapServ = tap.NewTapService(sp.TapCfg(), sp.UserRepo(ctx), sp.LedgerRepo(ctx), sp.TXManager(ctx))
	}
	return sp.tapServ
}

func (sp *ServiceProvider) TapHandler(ctx context.Context) *tapAPI.Handler {
	if sp.tapHand == nil {
		sp.tapHand = tapAPI.NewHandler(tapAPI.HandlerDeps{Serv: sp.TapService(ctx)})
	}
	return sp.tapHand
}

func (sp *ServiceProvider) WalkCfg() config.WalkConfig {
	if sp.walkCfg == nil {
		cfg, err := env.NewWalkConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get walk config: " + err.Error())
		}
		sp.walkCfg = cfg
	}
	return sp.walkCfg
}

func (sp *ServiceProvider) WalkService(ctx context.Context) service.WalkService {
	if sp.walkServ == nil {
		sp.walkServ = walk.NewWalkService(sp.WalkCfg(), sp.TapCfg(), sp.UserRepo(ctx), sp.LedgerRepo(ctx), sp.TXManager(ctx))
	}
	return sp.walkServ
}

func (sp *ServiceProvider) WalkHandler(ctx context.Context) *walkAPI.Handler {
	if sp.walkHand == nil {
		sp.walkHand = walkAPI.NewHandler(walkAPI.HandlerDeps{Serv: sp.WalkService(ctx)})
	}
	return sp.walkHand
}

func (sp *ServiceProvider) AviatorCfg() config.AviatorConfig {
	if sp.aviatorCfg == nil {
		cfg, err := env.NewAviatorConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get aviator config: " + err.Error())
		}
		sp.aviatorCfg = cfg
	}
	return sp.aviatorCfg
}

func (sp *ServiceProvider) RoundRepo(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) BetRepo(ctx context.Context) repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.betRepo
}

func (sp *ServiceProvider) HistoryRepo() repository.RoundHistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewRoundHistoryRepository(sp.AviatorCfg().HistorySize())
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) AviatorService(ctx context.Context) service.AviatorService {
	if sp.aviatorServ == nil {
		sp.aviatorServ = aviator.NewAviatorService(
			sp.AviatorCfg(),
			sp.RoundRepo(ctx),
			sp.BetRepo(ctx),
			sp.UserRepo(ctx),
			sp.LedgerRepo(ctx),
			sp.HistoryRepo(),
			sp.TXManager(ctx),
		)
	}
	return sp.aviatorServ
}

func (sp *ServiceProvider) Engine(ctx context.Context) *aviator.Engine {
	if sp.engine == nil {
		sp.engine = aviator.NewEngine(sp.AviatorCfg(), sp.RoundRepo(ctx), sp.HistoryRepo())
	}
	return sp.engine
}

func (sp *ServiceProvider) AviatorHandler(ctx context.Context) *aviatorAPI.Handler {
	if sp.aviatorHand == nil {
		sp.aviatorHand = aviatorAPI.NewHandler(aviatorAPI.HandlerDeps{Serv: sp.AviatorService(ctx)})
	}
	return sp.aviatorHand
}

func (sp *ServiceProvider) WalletCfg() config.WalletConfig {
	if sp.walletCfg == nil {
		cfg, err := env.NewWalletConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get wallet config: " + err.Error())
		}
		sp.walletCfg = cfg
	}
	return sp.walletCfg
}

func (sp *ServiceProvider) WithdrawalRepo(ctx context.Context) repository.WithdrawalRepository {
	if sp.withdrawalRepo == nil {
		sp.withdrawalRepo = withdrawal_repo.NewWithdrawalRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.withdrawalRepo
}

func (sp *ServiceProvider) Notifier() service.Notifier {
	if sp.notifier == nil {
		sp.notifier = notify.NewTelegramNotifier(sp.TelegramCfg().BotToken())
	}
	return sp.notifier
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		gateway := paystack.NewClient(sp.PaystackCfg().BaseURL(), sp.PaystackCfg().SecretKey())
		sp.walletServ = wallet.NewWalletService(
			sp.WalletCfg(),
			sp.UserRepo(ctx),
			sp.LedgerRepo(ctx),
			sp.WithdrawalRepo(ctx),
			gateway,
			sp.Notifier(),
			sp.TelegramCfg().AdminChatID(),
			sp.TXManager(ctx),
		)
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv:        sp.WalletService(ctx),
			PaystackCfg: sp.PaystackCfg(),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{Serv: sp.WalletService(ctx)})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token", "X-Paystack-Signature"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		r.Post("/auth/login", sp.AuthHandler(ctx).Login)

		r.Route("/api", func(rr chi.Router) {
			// Вебхук шлюза аутентифицируется подписью, не JWT
			rr.Post("/webhook/paystack", sp.WalletHandler(ctx).PaystackWebhook)

			// Пользовательские endpoints за JWT
			rr.Group(func(g chi.Router) {
				g.Use(middleware.Auth(sp.JWTCfg()))

				g.Get("/user", sp.UserHandler(ctx).Profile)
				g.Get("/transactions", sp.UserHandler(ctx).Transactions)

				g.Post("/tap", sp.TapHandler(ctx).Tap)
				g.Post("/steps", sp.WalkHandler(ctx).Steps)
				g.Post("/upgrade", sp.WalkHandler(ctx).Upgrade)

				g.Get("/aviator/state", sp.AviatorHandler(ctx).State)
				g.Post("/aviator/join", sp.AviatorHandler(ctx).Join)
				g.Post("/aviator/cashout", sp.AviatorHandler(ctx).Cashout)

				g.Post("/deposit", sp.WalletHandler(ctx).Deposit)
				g.Post("/withdraw", sp.WalletHandler(ctx).Withdraw)
			})

			// Админские endpoints за статическим токеном
			rr.Route("/admin", func(g chi.Router) {
				g.Use(middleware.Admin(sp.AdminCfg()))

				g.Post("/withdraw/approve", sp.AdminHandler(ctx).ApproveWithdraw)
				g.Post("/withdraw/reject", sp.AdminHandler(ctx).RejectWithdraw)
			})
		})

		sp.router = r
	}

	return sp.router
}
