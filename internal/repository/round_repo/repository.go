package round_repo

import (
	"context"
	"errors"
	"time"

	"tapify_backend/internal/model"
	"tapify_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table = "aviator_rounds"

	colID              = "id"
	colStartTime       = "start_time"
	colCrashMultiplier = "crash_multiplier"
	colGrowthPerSec    = "growth_per_sec"
	colStatus          = "status"
	colCreatedAt       = "created_at"
	colCrashedAt       = "crashed_at"
)

var roundColumns = []string{
	colID, colStartTime, colCrashMultiplier, colGrowthPerSec,
	colStatus, colCreatedAt, colCrashedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) scanRound(row pgx.Row) (*model.Round, error) {
	var rnd model.Round
	err := row.Scan(
		&rnd.ID, &rnd.StartTime, &rnd.CrashMultiplier, &rnd.GrowthPerSec,
		&rnd.Status, &rnd.CreatedAt, &rnd.CrashedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rnd, nil
}

// Create - вставка нового раунда. Возвращает ID созданного раунда
func (r *repo) Create(ctx context.Context, round *model.Round) (int64, error) {
	query := sq.Insert(table).
		Columns(colStartTime, colCrashMultiplier, colGrowthPerSec, colStatus).
		Values(round.StartTime, round.CrashMultiplier, round.GrowthPerSec, round.Status).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// MarkCrashed переводит раунд в статус crashed и фиксирует время краша
func (r *repo) MarkCrashed(ctx context.Context, roundID int64, at time.Time) error {
	query := sq.Update(table).
		Set(colStatus, model.RoundCrashed).
		Set(colCrashedAt, at).
		Where(sq.Eq{colID: roundID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) GetByID(ctx context.Context, roundID int64) (*model.Round, error) {
	query := sq.Select(roundColumns...).
		From(table).
		Where(sq.Eq{colID: roundID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanRound(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}

// GetActive - текущий активный раунд. Активных раундов не больше одного,
// но на всякий случай берем последний по ID
func (r *repo) GetActive(ctx context.Context) (*model.Round, error) {
	query := sq.Select(roundColumns...).
		From(table).
		Where(sq.Eq{colStatus: model.RoundActive}).
		OrderBy(colID + " DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanRound(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}

func (r *repo) GetLatest(ctx context.Context) (*model.Round, error) {
	query := sq.Select(roundColumns...).
		From(table).
		OrderBy(colID + " DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanRound(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}
