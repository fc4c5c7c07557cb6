package withdrawal_repo

import (
	"context"
	"errors"

	"tapify_backend/internal/model"
	"tapify_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table = "withdrawal_requests"

	colID          = "id"
	colChatID      = "chat_id"
	colAmountMills = "amount_mills"
	colPayout      = "payout"
	colStatus      = "status"
	colCreatedAt   = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWithdrawalRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.WithdrawalRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) Create(ctx context.Context, req *model.WithdrawalRequest) (int64, error) {
	query := sq.Insert(table).
		Columns(colChatID, colAmountMills, colPayout, colStatus).
		Values(req.ChatID, req.AmountMills, req.Payout, model.TxPending).
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

func (r *repo) GetByID(ctx context.Context, id int64) (*model.WithdrawalRequest, error) {
	query := sq.Select(colID, colChatID, colAmountMills, colPayout, colStatus, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var req model.WithdrawalRequest
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&req.ID, &req.ChatID, &req.AmountMills, &req.Payout, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &req, nil
}

func (r *repo) SetStatus(ctx context.Context, id int64, status string) error {
	query := sq.Update(table).
		Set(colStatus, status).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
