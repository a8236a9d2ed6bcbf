package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// TeamService описывает контракт сервиса команд для HTTP-слоя.
type TeamService interface {
	CreateTeam(ctx context.Context, t model.Team) (model.Team, error)
	GetTeam(ctx context.Context, teamID string) (model.Team, error)
	SaveMembers(ctx context.Context, teamID string, members []model.TeamMember) (model.Team, error)
	RemoveMember(ctx context.Context, teamID, username string) (model.Team, error)
}

// UserService описывает контракт сервиса поиска пользователей для HTTP-слоя.
type UserService interface {
	Search(ctx context.Context, query string, filter service.RoleFilter) ([]model.User, error)
}

// JoinRequestService описывает контракт сервиса заявок для HTTP-слоя.
type JoinRequestService interface {
	List(ctx context.Context, teamID string) ([]model.JoinRequest, error)
	Apply(ctx context.Context, teamID, username string) error
	Respond(ctx context.Context, teamID, username string, action model.JoinAction) error
}

// ProjectService описывает контракт сервиса проектов для HTTP-слоя.
type ProjectService interface {
	GetProject(ctx context.Context, projectID string) (model.Project, error)
	UpdateInfo(ctx context.Context, p model.Project) (model.Project, error)
}

type Handler struct {
	Teams    TeamService
	Users    UserService
	Requests JoinRequestService
	Projects ProjectService
	Log      *slog.Logger

	// Token — сервисный токен, с которым сверяется заголовок Authorization.
	Token string
}

func NewHandler(teams TeamService, users UserService, requests JoinRequestService, projects ProjectService, log *slog.Logger, token string) *Handler {
	return &Handler{
		Teams:    teams,
		Users:    users,
		Requests: requests,
		Projects: projects,
		Log:      log,
		Token:    token,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// API обслуживает браузерный фронтенд с другого origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)

	r.Get("/users/", h.handleUserSearch)

	r.With(h.requireAuth).Post("/teams/", h.handleTeamCreate)

	r.Route("/teams/{teamId}", func(r chi.Router) {
		r.Get("/", h.handleTeamGet)
		r.Get("/join-requests/", h.handleJoinRequestList)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Put("/members/", h.handleMembersSave)
			r.Delete("/members/{username}", h.handleMemberRemove)
			r.Post("/actions/join/", h.handleJoinApply)
			r.Patch("/actions/join/", h.handleJoinRespond)
		})
	})

	r.Route("/projects/{projectId}", func(r chi.Router) {
		r.Get("/", h.handleProjectGet)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Patch("/", h.handleProjectUpdate)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
