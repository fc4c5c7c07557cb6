package bet_repo

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
	table = "aviator_bets"

	colID                = "id"
	colRoundID           = "round_id"
	colChatID            = "chat_id"
	colAmountMills       = "amount_mills"
	colCashedOut         = "cashed_out"
	colCashoutMultiplier = "cashout_multiplier"
	colCreatedAt         = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BetRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Create - вставка ставки. На пару (round_id, chat_id) в схеме стоит
// уникальный индекс, поэтому гонка двух join на один раунд закончится ошибкой
func (r *repo) Create(ctx context.Context, bet *model.Bet) (int64, error) {
	query := sq.Insert(table).
		Columns(colRoundID, colChatID, colAmountMills).
		Values(bet.RoundID, bet.ChatID, bet.AmountMills).
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

func (r *repo) GetByRoundAndUser(ctx context.Context, roundID, chatID int64) (*model.Bet, error) {
	query := sq.Select(colID, colRoundID, colChatID, colAmountMills, colCashedOut, colCashoutMultiplier, colCreatedAt).
		From(table).
		Where(sq.Eq{colRoundID: roundID, colChatID: chatID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var b model.Bet
	var mult *float64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&b.ID, &b.RoundID, &b.ChatID, &b.AmountMills, &b.CashedOut, &mult, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if mult != nil {
		b.CashoutMultiplier = *mult
	}
	return &b, nil
}

// MarkCashedOut помечает ставку выведенной с фиксацией множителя.
// Условие cashed_out = false гарантирует, что вывести ставку можно один раз
func (r *repo) MarkCashedOut(ctx context.Context, betID int64, multiplier float64) error {
	query := sq.Update(table).
		Set(colCashedOut, true).
		Set(colCashoutMultiplier, multiplier).
		Where(sq.Eq{colID: betID, colCashedOut: false}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("bet already cashed out")
	}

	return nil
}
