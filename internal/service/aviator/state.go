package aviator

import (
	"context"
	"time"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

// State - снимок последнего раунда, ставка запрашивающего и история крэшей.
// Крэш-множитель раунда наружу не отдается, пока раунд не крашнулся -
// это забота конвертера API
func (s *serv) State(ctx context.Context) (*model.AviatorState, error) {
	round, err := s.rounds.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, service.ErrNotFound
	}

	mult, crashed := CurrentMultiplier(round, time.Now().UTC())

	state := &model.AviatorState{
		Round:             round,
		CurrentMultiplier: mult,
		Crashed:           crashed,
		History:           s.history.Recent(s.cfg.HistorySize()),
	}

	if chatID, ok := middleware.UserIDFromContext(ctx); ok {
		bet, err := s.bets.GetByRoundAndUser(ctx, round.ID, chatID)
		if err != nil {
			return nil, err
		}
		state.Bet = bet
	}

	return state, nil
}
