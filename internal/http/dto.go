// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "team-membership-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchUsersResponse struct {
	Users []model.User `json:"users"`
}

type teamResponse struct {
	Team model.Team `json:"team"`
}

type memberPayload struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role,omitempty"`
}

type saveMembersRequest struct {
	Members []memberPayload `json:"members"`
}

type createTeamRequest struct {
	TeamID   string          `json:"team_id"`
	TeamName string          `json:"team_name"`
	Members  []memberPayload `json:"members"`
}

type joinRequestsResponse struct {
	Requests []model.JoinRequest `json:"requests"`
}

type joinApplyRequest struct {
	Username string `json:"username"`
}

// joinResponseRequest повторяет форму join-response, которую шлёт фронтенд:
// роль всегда MEMBER, тип всегда join-response.
type joinResponseRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"type"`
	Action   string `json:"action"`
}

type joinActionResponse struct {
	TeamID   string `json:"team_id"`
	Username string `json:"username"`
	Action   string `json:"action"`
}

type updateProjectRequest struct {
	Status        model.ProjectStatus   `json:"status"`
	Priority      model.ProjectPriority `json:"priority"`
	DefaultLocale string                `json:"default_locale"`
	Info          []model.ProjectInfo   `json:"project_info"`
}

type projectResponse struct {
	Project model.Project `json:"project"`
}
