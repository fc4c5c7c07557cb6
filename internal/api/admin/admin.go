package admin

import (
	"net/http"

	"tapify_backend/internal/api"
	dto "tapify_backend/internal/api/dto/admin"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/req"
	"tapify_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WalletService
}

type Handler struct {
	serv service.WalletService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// ApproveWithdraw подтверждает заявку на вывод
func (h *Handler) ApproveWithdraw(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.WithdrawActionRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.serv.ApproveWithdrawal(r.Context(), requestBody.RequestID); err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.WithdrawActionResponse{
		RequestID: requestBody.RequestID,
		Status:    model.TxApproved,
	})
}

// RejectWithdraw отклоняет заявку и возвращает замороженную сумму
func (h *Handler) RejectWithdraw(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.WithdrawActionRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.serv.RejectWithdrawal(r.Context(), requestBody.RequestID, requestBody.Reason); err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.WithdrawActionResponse{
		RequestID: requestBody.RequestID,
		Status:    model.TxRejected,
	})
}
