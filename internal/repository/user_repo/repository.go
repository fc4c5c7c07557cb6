package user_repo

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
	table = "users"

	colChatID           = "chat_id"
	colUsername         = "username"
	colBalanceMills     = "balance_mills"
	colWalkLevel        = "walk_level"
	colWalkRate         = "walk_rate_mills"
	colTotalSteps       = "total_steps"
	colStepsCreditedOn  = "steps_credited_on"
	colStepsMillsToday  = "steps_mills_today"
	colEnergy           = "energy"
	colEnergyMax        = "energy_max"
	colEnergyRegen      = "energy_regen_per_sec"
	colLastEnergyUpdate = "last_energy_update"
	colCreatedAt        = "created_at"
)

var userColumns = []string{
	colChatID, colUsername, colBalanceMills,
	colWalkLevel, colWalkRate, colTotalSteps,
	colStepsCreditedOn, colStepsMillsToday,
	colEnergy, colEnergyMax, colEnergyRegen, colLastEnergyUpdate,
	colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ChatID, &u.Username, &u.BalanceMills,
		&u.WalkLevel, &u.WalkRate, &u.TotalSteps,
		&u.StepsCreditedOn, &u.StepsMillsToday,
		&u.Energy, &u.EnergyMax, &u.EnergyRegenPerSec, &u.LastEnergyUpdate,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOrCreate - получение пользователя по chat_id.
// При первом обращении создает запись с дефолтами схемы.
func (r *repo) GetOrCreate(ctx context.Context, chatID int64, username string) (*model.User, error) {
	// Формируем запрос на вставку, если записи не существует
	insert := sq.Insert(table).
		Columns(colChatID, colUsername).
		Values(chatID, username).
		Suffix("ON CONFLICT (" + colChatID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)
	if _, err = conn.Exec(ctx, sqlStr, args...); err != nil {
		return nil, err
	}

	return r.Get(ctx, chatID)
}

func (r *repo) Get(ctx context.Context, chatID int64) (*model.User, error) {
	query := sq.Select(userColumns...).
		From(table).
		Where(sq.Eq{colChatID: chatID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanUser(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}

// GetBalance - баланс пользователя в миллах
func (r *repo) GetBalance(ctx context.Context, chatID int64) (int64, error) {
	query := sq.Select(colBalanceMills).
		From(table).
		Where(sq.Eq{colChatID: chatID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return balance, nil
}

func (r *repo) UpdateBalance(ctx context.Context, chatID int64, balanceMills int64) error {
	query := sq.Update(table).
		Set(colBalanceMills, balanceMills).
		Where(sq.Eq{colChatID: chatID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) UpdateEnergy(ctx context.Context, chatID int64, energy int, at time.Time) error {
	query := sq.Update(table).
		Set(colEnergy, energy).
		Set(colLastEnergyUpdate, at).
		Where(sq.Eq{colChatID: chatID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) UpdateWalk(ctx context.Context, chatID int64, level int, rateMills int64, regenPerSec float64) error {
	query := sq.Update(table).
		Set(colWalkLevel, level).
		Set(colWalkRate, rateMills).
		Set(colEnergyRegen, regenPerSec).
		Where(sq.Eq{colChatID: chatID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) UpdateSteps(ctx context.Context, chatID int64, totalSteps int64, creditedOn time.Time, millsToday int64) error {
	query := sq.Update(table).
		Set(colTotalSteps, totalSteps).
		Set(colStepsCreditedOn, creditedOn).
		Set(colStepsMillsToday, millsToday).
		Where(sq.Eq{colChatID: chatID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
