package middleware

import (
	"net/http"

	"tapify_backend/internal/config"
	"tapify_backend/pkg/resp"

	"golang.org/x/crypto/bcrypt"
)

// Admin пускает дальше только запросы с верным X-Admin-Token.
// В окружении хранится только bcrypt-хэш токена
func Admin(adminCfg config.AdminConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := r.Header.Get("X-Admin-Token")
			if tok == "" {
				tok = r.URL.Query().Get("admin_token")
			}
			if tok == "" {
				resp.WriteJSONError(w, http.StatusForbidden, "admin token required")
				return
			}

			if err := bcrypt.CompareHashAndPassword(adminCfg.TokenHash(), []byte(tok)); err != nil {
				resp.WriteJSONError(w, http.StatusForbidden, "admin token required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
