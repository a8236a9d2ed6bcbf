package http

import (
	"net/http"
	"strings"

	"team-membership-service/internal/service"
)

// requireAuth пропускает запрос дальше только при валидном сервисном токене
// в заголовке Authorization. Принимаются схемы "Token" и "Bearer".
// Выпуск и продление токенов — забота внешнего auth-сервиса.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := parseAuthHeader(r.Header.Get("Authorization"))
		if token == "" {
			h.writeError(w, "auth", service.ErrUnauthorized("authentication token is required"))
			return
		}
		if h.Token == "" || token != h.Token {
			h.writeError(w, "auth", service.ErrUnauthorized("invalid authentication token"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseAuthHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	switch strings.ToLower(parts[0]) {
	case "token", "bearer":
		return strings.TrimSpace(parts[1])
	}
	return ""
}
