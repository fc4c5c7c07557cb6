package user

import (
	"net/http"

	"tapify_backend/internal/api"
	"tapify_backend/internal/converter"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.UserService
}

type Handler struct {
	serv service.UserService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Profile возвращает профиль с актуальной энергией и остатком дневного лимита
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.serv.Profile(r.Context())
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(profile))
}

// Transactions возвращает последние операции пользователя
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.serv.Transactions(r.Context())
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionsResponse(txs))
}
