package walk

import (
	"net/http"

	"tapify_backend/internal/api"
	dto "tapify_backend/internal/api/dto/walk"
	"tapify_backend/internal/converter"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/req"
	"tapify_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WalkService
}

type Handler struct {
	serv service.WalkService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Steps зачисляет награду за шаги в пределах дневного лимита
func (h *Handler) Steps(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.StepsRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Steps(r.Context(), requestBody.Steps)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStepsResponse(result))
}

// Upgrade покупает следующий уровень Walk & Earn
func (h *Handler) Upgrade(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.UpgradeRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Upgrade(r.Context(), requestBody.Level)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUpgradeResponse(result))
}
