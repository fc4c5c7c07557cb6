package aviator

import (
	"context"
	"errors"
	"time"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// Cashout фиксирует текущий множитель и выплачивает ставку.
// roundID = 0 - вывод из текущего активного раунда
func (s *serv) Cashout(ctx context.Context, roundID int64) (*model.CashoutResult, error) {
	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.CashoutResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var round *model.Round
		var err error

		if roundID == 0 {
			round, err = s.rounds.GetActive(txCtx)
			if err != nil {
				return err
			}
			if round == nil {
				return service.ErrNoActiveRound
			}
		} else {
			round, err = s.rounds.GetByID(txCtx, roundID)
			if err != nil {
				return err
			}
			if round == nil {
				return service.ErrNotFound
			}
		}

		bet, err := s.bets.GetByRoundAndUser(txCtx, round.ID, chatID)
		if err != nil {
			return err
		}
		if bet == nil {
			return service.ErrNoBet
		}
		if bet.CashedOut {
			return service.ErrAlreadyCashedOut
		}

		// Раунд мог крашнуться между запросом клиента и этой проверкой.
		// Ставка в таком случае проиграна - множитель уже достиг крэша
		mult, crashed := CurrentMultiplier(round, time.Now().UTC())
		if crashed {
			return service.ErrRoundCrashed
		}

		if err := s.bets.MarkCashedOut(txCtx, bet.ID, mult); err != nil {
			return err
		}

		payout := Payout(bet.AmountMills, mult)

		balance, err := s.userRepo.GetBalance(txCtx, chatID)
		if err != nil {
			return err
		}
		balance += payout
		if err := s.userRepo.UpdateBalance(txCtx, chatID, balance); err != nil {
			return err
		}

		if _, err := s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      chatID,
			Type:        model.TxAviatorCashout,
			Status:      model.TxApproved,
			AmountMills: payout,
			Meta:        map[string]any{"round_id": round.ID, "multiplier": mult},
		}); err != nil {
			return err
		}

		res = &model.CashoutResult{
			RoundID:      round.ID,
			Multiplier:   mult,
			PayoutMills:  payout,
			BalanceMills: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
