package ledger_repo

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
	table = "transactions"

	colID          = "id"
	colChatID      = "chat_id"
	colType        = "type"
	colStatus      = "status"
	colAmountMills = "amount_mills"
	colExternalRef = "external_ref"
	colMeta        = "meta"
	colCreatedAt   = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Add - вставка операции в леджер. Возвращает ID операции.
// Для external_ref пустая строка превращается в NULL, чтобы работал
// частичный уникальный индекс идемпотентности вебхука
func (r *repo) Add(ctx context.Context, tx *model.Transaction) (int64, error) {
	var ref *string
	if tx.ExternalRef != "" {
		ref = &tx.ExternalRef
	}

	meta := tx.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	query := sq.Insert(table).
		Columns(colChatID, colType, colStatus, colAmountMills, colExternalRef, colMeta).
		Values(tx.ChatID, tx.Type, tx.Status, tx.AmountMills, ref, meta).
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

func (r *repo) GetByExternalRef(ctx context.Context, ref string) (*model.Transaction, error) {
	query := sq.Select(colID, colChatID, colType, colStatus, colAmountMills, colExternalRef, colMeta, colCreatedAt).
		From(table).
		Where(sq.Eq{colExternalRef: ref}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := r.scanTx(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return tx, nil
}

func (r *repo) scanTx(row pgx.Row) (*model.Transaction, error) {
	var tx model.Transaction
	var ref *string
	err := row.Scan(&tx.ID, &tx.ChatID, &tx.Type, &tx.Status, &tx.AmountMills, &ref, &tx.Meta, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	if ref != nil {
		tx.ExternalRef = *ref
	}
	return &tx, nil
}

func (r *repo) ListByUser(ctx context.Context, chatID int64, limit int) ([]model.Transaction, error) {
	query := sq.Select(colID, colChatID, colType, colStatus, colAmountMills, colExternalRef, colMeta, colCreatedAt).
		From(table).
		Where(sq.Eq{colChatID: chatID}).
		OrderBy(colID + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Transaction
	for rows.Next() {
		tx, err := r.scanTx(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *tx)
	}

	return list, rows.Err()
}

// CompleteDeposit переводит pending-депозит с референсом ref в completed
// с зачисленной суммой. Pending-строки не попадают под уникальный индекс,
// поэтому депозит живет одной строкой: создан при инициализации платежа,
// закрыт вебхуком
func (r *repo) CompleteDeposit(ctx context.Context, ref string, amountMills int64) error {
	query := sq.Update(table).
		Set(colStatus, model.TxCompleted).
		Set(colAmountMills, amountMills).
		Where(sq.Eq{
			colExternalRef: ref,
			colType:        model.TxDeposit,
			colStatus:      model.TxPending,
		}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// SetLatestWithdrawStatus меняет статус последнего pending-вывода
// пользователя на указанную сумму (суммы выводов в леджере отрицательные)
func (r *repo) SetLatestWithdrawStatus(ctx context.Context, chatID int64, amountMills int64, status string) error {
	sub := sq.Select(colID).
		From(table).
		Where(sq.Eq{
			colChatID:      chatID,
			colType:        model.TxWithdraw,
			colStatus:      model.TxPending,
			colAmountMills: -amountMills,
		}).
		OrderBy(colID + " DESC").
		Limit(1)

	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colStatus, status).
		Where(sq.Expr(colID+" = ("+subSQL+")", subArgs...)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
