package resp

import (
	"encoding/json"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError - стандартный ответ с ошибкой: {"error": "..."}
func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, map[string]string{"error": msg})
}
