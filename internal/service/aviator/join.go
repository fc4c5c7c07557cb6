package aviator

import (
	"context"
	"errors"
	"time"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// Join ставит ставку на текущий активный раунд.
// Списание баланса, запись в леджер и создание ставки - одна транзакция
func (s *serv) Join(ctx context.Context, amountMills int64) (*model.JoinResult, error) {
	if amountMills < s.cfg.MinBetMills() || amountMills > s.cfg.MaxBetMills() {
		return nil, service.ErrBetOutOfRange
	}

	chatID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.JoinResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		round, err := s.rounds.GetActive(txCtx)
		if err != nil {
			return err
		}
		if round == nil {
			return service.ErrNoActiveRound
		}

		// Статус в базе переключается только по окончании длительности раунда,
		// но множитель мог уже достичь крэша - такая ставка заведомо проиграна
		if _, crashed := CurrentMultiplier(round, time.Now().UTC()); crashed {
			return service.ErrRoundCrashed
		}

		// Не больше одной ставки на раунд от пользователя
		existing, err := s.bets.GetByRoundAndUser(txCtx, round.ID, chatID)
		if err != nil {
			return err
		}
		if existing != nil {
			return service.ErrAlreadyBet
		}

		balance, err := s.userRepo.GetBalance(txCtx, chatID)
		if err != nil {
			return err
		}
		if balance < amountMills {
			return service.ErrInsufficientBalance
		}

		balance -= amountMills
		if err := s.userRepo.UpdateBalance(txCtx, chatID, balance); err != nil {
			return err
		}

		if _, err := s.ledger.Add(txCtx, &model.Transaction{
			ChatID:      chatID,
			Type:        model.TxAviatorBet,
			Status:      model.TxApproved,
			AmountMills: -amountMills,
			Meta:        map[string]any{"round_id": round.ID},
		}); err != nil {
			return err
		}

		betID, err := s.bets.Create(txCtx, &model.Bet{
			RoundID:     round.ID,
			ChatID:      chatID,
			AmountMills: amountMills,
		})
		if err != nil {
			return err
		}

		res = &model.JoinResult{
			RoundID:      round.ID,
			BetID:        betID,
			AmountMills:  amountMills,
			BalanceMills: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
