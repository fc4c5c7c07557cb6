package middleware

import (
	"context"
	"net/http"
	"strings"

	"tapify_backend/internal/config"
	"tapify_backend/pkg/resp"
	"tapify_backend/pkg/token"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserIDFromContext возвращает chat_id аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID кладет chat_id в контекст. Используется в тестах сервисов
func WithUserID(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, userIDKey, chatID)
}

// Auth проверяет Bearer-токен и кладет chat_id в контекст запроса
func Auth(jwtCfg config.JWTConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				resp.WriteJSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, "Bearer "), jwtCfg.AccessTokenSecretKey())
			if err != nil {
				resp.WriteJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			chatID, err := token.ChatID(claims)
			if err != nil {
				resp.WriteJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), chatID)))
		})
	}
}
