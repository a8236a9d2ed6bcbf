package http

import (
	"net/http"

	"team-membership-service/internal/service"
)

// handleUserSearch реализует GET /users/?username={q}&role={r1,r2}.
// Присутствие параметра role сужает поиск до менеджерских ролей,
// его отсутствие означает поиск по всем пользователям.
func (h *Handler) handleUserSearch(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_search"

	query := r.URL.Query().Get("username")
	roleParam := r.URL.Query().Get("role")

	if err := ValidateRoleParam(roleParam); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	filter := service.FilterMembers
	if roleParam != "" {
		filter = service.FilterManagers
	}

	ctx := r.Context()
	users, err := h.Users.Search(ctx, query, filter)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, searchUsersResponse{Users: users})
}
