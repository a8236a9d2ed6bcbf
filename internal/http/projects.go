package http

import (
	"encoding/json"
	"net/http"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_get"

	projectID := chi.URLParam(r, "projectId")

	ctx := r.Context()
	project, err := h.Projects.GetProject(ctx, projectID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, projectResponse{Project: project})
}

// handleProjectUpdate реализует PATCH /projects/{projectId}/:
// форма редактирования присылает статус, приоритет и локализованные описания.
func (h *Handler) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_update"

	projectID := chi.URLParam(r, "projectId")

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	project := model.Project{
		ProjectID:     projectID,
		Status:        req.Status,
		Priority:      req.Priority,
		DefaultLocale: req.DefaultLocale,
		Info:          req.Info,
	}

	ctx := r.Context()
	updated, err := h.Projects.UpdateInfo(ctx, project)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, projectResponse{Project: updated})
}
