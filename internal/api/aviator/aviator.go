package aviator

import (
	"net/http"

	"tapify_backend/internal/api"
	dto "tapify_backend/internal/api/dto/aviator"
	"tapify_backend/internal/converter"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/req"
	"tapify_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AviatorService
}

type Handler struct {
	serv service.AviatorService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// State - снимок последнего раунда, текущий множитель и ставка запрашивающего
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAviatorStateResponse(state))
}

// Join ставит на текущий активный раунд
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.JoinRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Join(r.Context(), requestBody.AmountMills)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToJoinResponse(result))
}

// Cashout выводит ставку по текущему множителю
func (h *Handler) Cashout(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CashoutRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Cashout(r.Context(), requestBody.RoundID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCashoutResponse(result))
}
