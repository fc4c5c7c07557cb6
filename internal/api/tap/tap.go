package tap

import (
	"net/http"

	"tapify_backend/internal/api"
	dto "tapify_backend/internal/api/dto/tap"
	"tapify_backend/internal/converter"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/req"
	"tapify_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.TapService
}

type Handler struct {
	serv service.TapService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Tap начисляет награду за тапы, списывая энергию
func (h *Handler) Tap(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.TapRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Tap(r.Context(), requestBody.Count)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTapResponse(result))
}
