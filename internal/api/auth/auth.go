package auth

import (
	"log"
	"net/http"

	dto "tapify_backend/internal/api/dto/auth"
	"tapify_backend/internal/converter"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/req"
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

// Login проверяет initData мини-аппа, создает пользователя при первом входе
// и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.InitData, requestBody.ChatID, requestBody.Username)
	if err != nil {
		log.Println("Login error:", err)
		resp.WriteJSONError(w, http.StatusUnauthorized, "login failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLoginResponse(data))
}
