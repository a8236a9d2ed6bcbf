package http

import (
	"fmt"
	"regexp"
	"strings"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"
)

// Регулярка для проверки корректности юзернейма
var reUsername = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// Users

// ValidateRoleParam Валидация query-параметра role для /users/
func ValidateRoleParam(roleParam string) error {
	if roleParam == "" {
		return nil
	}
	for _, raw := range strings.Split(roleParam, ",") {
		switch model.Role(strings.TrimSpace(raw)) {
		case model.RoleAdmin, model.RoleProjectManager:
		default:
			return service.ErrBadRequest(fmt.Sprintf("unknown role %q", raw))
		}
	}
	return nil
}

// Teams

// ValidateCreateTeamRequest POST /teams/ — тело запроса
func ValidateCreateTeamRequest(req createTeamRequest) error {
	if req.TeamID == "" {
		return service.ErrBadRequest("team_id is required")
	}
	if req.TeamName == "" {
		return service.ErrBadRequest("team_name is required")
	}
	if len(req.Members) == 0 {
		return service.ErrBadRequest("members must not be empty")
	}
	return ValidateSaveMembersRequest(saveMembersRequest{Members: req.Members})
}

// ValidateSaveMembersRequest PUT /teams/{teamId}/members/ — тело запроса
func ValidateSaveMembersRequest(req saveMembersRequest) error {
	for i, m := range req.Members {
		if m.Username == "" {
			return service.ErrBadRequest(fmt.Sprintf("members[%d].username is required", i))
		}
		if !reUsername.MatchString(m.Username) {
			return service.ErrBadRequest(fmt.Sprintf("members[%d].username contains invalid characters", i))
		}
		if m.Role != "" {
			switch m.Role {
			case model.RoleMember, model.RoleAdmin, model.RoleProjectManager:
			default:
				return service.ErrBadRequest(fmt.Sprintf("members[%d].role %q is unknown", i, m.Role))
			}
		}
	}
	return nil
}

// Join requests

// ValidateJoinApplyRequest POST /teams/{teamId}/actions/join/ — тело запроса
func ValidateJoinApplyRequest(req joinApplyRequest) error {
	if req.Username == "" {
		return service.ErrBadRequest("username is required")
	}
	if !reUsername.MatchString(req.Username) {
		return service.ErrBadRequest("username contains invalid characters")
	}
	return nil
}

// ValidateJoinResponseRequest PATCH /teams/{teamId}/actions/join/ — тело запроса.
// Форма фиксирована фронтендом: role всегда MEMBER, type всегда join-response.
func ValidateJoinResponseRequest(req joinResponseRequest) error {
	if req.Username == "" {
		return service.ErrBadRequest("username is required")
	}
	if !reUsername.MatchString(req.Username) {
		return service.ErrBadRequest("username contains invalid characters")
	}
	if req.Type != "join-response" {
		return service.ErrBadRequest("type must be join-response")
	}
	if req.Role != "" && req.Role != string(model.RoleMember) {
		return service.ErrBadRequest("role must be MEMBER")
	}
	if !model.JoinAction(req.Action).Valid() {
		return service.ErrBadRequest("action must be accept or reject")
	}
	return nil
}
