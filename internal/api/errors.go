package api

import (
	"errors"
	"log"
	"net/http"

	"tapify_backend/internal/service"
	"tapify_backend/pkg/resp"
)

// Перевод ошибок сервисного слоя в HTTP статусы
var statusByErr = map[error]int{
	service.ErrBadRequest:          http.StatusBadRequest,
	service.ErrBetOutOfRange:       http.StatusBadRequest,
	service.ErrInsufficientBalance: http.StatusBadRequest,
	service.ErrNotEnoughEnergy:     http.StatusBadRequest,
	service.ErrNoActiveRound:       http.StatusConflict,
	service.ErrAlreadyBet:          http.StatusConflict,
	service.ErrNoBet:               http.StatusConflict,
	service.ErrAlreadyCashedOut:    http.StatusConflict,
	service.ErrRoundCrashed:        http.StatusConflict,
	service.ErrNotFound:            http.StatusNotFound,
}

// WriteError пишет JSON-ошибку; известные сервисные ошибки - 4xx,
// остальное - 500 без деталей (детали в лог)
func WriteError(w http.ResponseWriter, err error) {
	for sentinel, status := range statusByErr {
		if errors.Is(err, sentinel) {
			resp.WriteJSONError(w, status, sentinel.Error())
			return
		}
	}
	log.Println("internal error:", err)
	resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
}
