package http

import (
	"encoding/json"
	"net/http"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleJoinRequestList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "join_request_list"

	teamID := chi.URLParam(r, "teamId")

	ctx := r.Context()
	requests, err := h.Requests.List(ctx, teamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if requests == nil {
		requests = make([]model.JoinRequest, 0)
	}

	h.writeJSON(w, http.StatusOK, joinRequestsResponse{Requests: requests})
}

func (h *Handler) handleJoinApply(w http.ResponseWriter, r *http.Request) {
	const handlerName = "join_apply"

	teamID := chi.URLParam(r, "teamId")

	var req joinApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateJoinApplyRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Requests.Apply(ctx, teamID, req.Username); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, joinActionResponse{
		TeamID:   teamID,
		Username: req.Username,
		Action:   "apply",
	})
}

// handleJoinRespond реализует PATCH /teams/{teamId}/actions/join/.
// Ответ уходит только после фиксации перехода в хранилище: список заявок
// на клиенте прореживается по подтверждённому состоянию, не оптимистично.
func (h *Handler) handleJoinRespond(w http.ResponseWriter, r *http.Request) {
	const handlerName = "join_respond"

	teamID := chi.URLParam(r, "teamId")

	var req joinResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateJoinResponseRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Requests.Respond(ctx, teamID, req.Username, model.JoinAction(req.Action)); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, joinActionResponse{
		TeamID:   teamID,
		Username: req.Username,
		Action:   req.Action,
	})
}
