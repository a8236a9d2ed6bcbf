package http

import (
	"encoding/json"
	"net/http"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateTeamRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	members := make([]model.TeamMember, 0, len(req.Members))
	for _, m := range req.Members {
		role := m.Role
		if role == "" {
			role = model.RoleMember
		}
		members = append(members, model.TeamMember{Username: m.Username, Role: role})
	}

	ctx := r.Context()
	team, err := h.Teams.CreateTeam(ctx, model.Team{
		TeamID:   req.TeamID,
		TeamName: req.TeamName,
		Members:  members,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, teamResponse{Team: team})
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	teamID := chi.URLParam(r, "teamId")

	ctx := r.Context()
	team, err := h.Teams.GetTeam(ctx, teamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

// handleMembersSave целиком заменяет список участников: фронтенд присылает
// итоговый список после режима редактирования, слияния на сервере нет.
func (h *Handler) handleMembersSave(w http.ResponseWriter, r *http.Request) {
	const handlerName = "members_save"

	teamID := chi.URLParam(r, "teamId")

	var req saveMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateSaveMembersRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	members := make([]model.TeamMember, 0, len(req.Members))
	for _, m := range req.Members {
		role := m.Role
		if role == "" {
			role = model.RoleMember
		}
		members = append(members, model.TeamMember{Username: m.Username, Role: role})
	}

	ctx := r.Context()
	team, err := h.Teams.SaveMembers(ctx, teamID, members)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func (h *Handler) handleMemberRemove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "member_remove"

	teamID := chi.URLParam(r, "teamId")
	username := chi.URLParam(r, "username")

	ctx := r.Context()
	team, err := h.Teams.RemoveMember(ctx, teamID, username)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, teamResponse{Team: team})
}
