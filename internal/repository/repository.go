package repository

import (
	"context"
	"time"

	"tapify_backend/internal/model"
)

type UserRepository interface {
	// GetOrCreate возвращает пользователя по chat_id, создавая его при первом обращении
	GetOrCreate(ctx context.Context, chatID int64, username string) (*model.User, error)
	Get(ctx context.Context, chatID int64) (*model.User, error)

	GetBalance(ctx context.Context, chatID int64) (int64, error)
	UpdateBalance(ctx context.Context, chatID int64, balanceMills int64) error

	UpdateEnergy(ctx context.Context, chatID int64, energy int, at time.Time) error
	UpdateWalk(ctx context.Context, chatID int64, level int, rateMills int64, regenPerSec float64) error
	UpdateSteps(ctx context.Context, chatID int64, totalSteps int64, creditedOn time.Time, millsToday int64) error
}

type RoundRepository interface {
	// Create вставляет раунд и возвращает его ID
	Create(ctx context.Context, round *model.Round) (int64, error)
	MarkCrashed(ctx context.Context, roundID int64, at time.Time) error

	GetByID(ctx context.Context, roundID int64) (*model.Round, error)
	// GetActive возвращает текущий активный раунд, nil - если его нет
	GetActive(ctx context.Context) (*model.Round, error)
	// GetLatest возвращает последний по ID раунд, nil - если раундов еще не было
	GetLatest(ctx context.Context) (*model.Round, error)
}

type BetRepository interface {
	Create(ctx context.Context, bet *model.Bet) (int64, error)
	// GetByRoundAndUser возвращает ставку пользователя в раунде, nil - если ее нет
	GetByRoundAndUser(ctx context.Context, roundID, chatID int64) (*model.Bet, error)
	MarkCashedOut(ctx context.Context, betID int64, multiplier float64) error
}

type LedgerRepository interface {
	Add(ctx context.Context, tx *model.Transaction) (int64, error)
	// GetByExternalRef возвращает nil, если операции с таким референсом нет
	GetByExternalRef(ctx context.Context, ref string) (*model.Transaction, error)
	// CompleteDeposit переводит pending-депозит с референсом ref в completed
	// и фиксирует зачисленную сумму
	CompleteDeposit(ctx context.Context, ref string, amountMills int64) error
	ListByUser(ctx context.Context, chatID int64, limit int) ([]model.Transaction, error)
	// SetLatestWithdrawStatus меняет статус последнего pending-вывода пользователя на заданную сумму
	SetLatestWithdrawStatus(ctx context.Context, chatID int64, amountMills int64, status string) error
}

type WithdrawalRepository interface {
	Create(ctx context.Context, req *model.WithdrawalRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.WithdrawalRequest, error)
	SetStatus(ctx context.Context, id int64, status string) error
}

// RoundHistoryRepository - история крэш-множителей в памяти процесса
type RoundHistoryRepository interface {
	Append(multiplier float64)
	Recent(n int) []float64
	TotalRounds() int64
}
