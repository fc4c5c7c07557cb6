package wallet

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"tapify_backend/internal/api"
	dto "tapify_backend/internal/api/dto/wallet"
	"tapify_backend/internal/config"
	"tapify_backend/internal/converter"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/paystack"
	"tapify_backend/pkg/req"
	"tapify_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv        service.WalletService
	PaystackCfg config.PaystackConfig
}

type Handler struct {
	serv        service.WalletService
	paystackCfg config.PaystackConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:        deps.Serv,
		paystackCfg: deps.PaystackCfg,
	}
}

// Deposit инициализирует платеж в Paystack и возвращает ссылку на оплату
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Deposit(r.Context(), requestBody.AmountNGN)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDepositResponse(result))
}

// Withdraw создает заявку на вывод и замораживает сумму на балансе
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Withdraw(r.Context(), requestBody.AmountMills, requestBody.Payout)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawResponse(result))
}

// PaystackWebhook принимает событие шлюза. Подпись считается по сырому телу,
// поэтому тело читается до разбора JSON
func (h *Handler) PaystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	signature := r.Header.Get("X-Paystack-Signature")
	if !paystack.VerifySignature(h.paystackCfg.SecretKey(), body, signature) {
		resp.WriteJSONError(w, http.StatusUnauthorized, "bad signature")
		return
	}

	var event dto.PaystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// Интересует только успешная оплата; остальные события подтверждаем молча
	if event.Event == "charge.success" {
		err := h.serv.ConfirmDeposit(r.Context(), event.Data.Metadata.ChatID, event.Data.Reference, event.Data.Amount)
		if err != nil {
			log.Println("ConfirmDeposit error:", err)
			api.WriteError(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
