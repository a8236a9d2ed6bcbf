// Package client реализует типизированный JSON-клиент сервиса членства
// для фронтендов и интеграционных тестов.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"
)

// APIError — ошибка, возвращённая сервисом в конверте {"error":{...}}.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error реализует интерфейс error для APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// Client ходит в сервис членства по HTTP. Токен подставляется
// в заголовок Authorization со схемой Token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New создаёт клиент с таймаутом по умолчанию.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// SearchUsers ищет пользователей по префиксу юзернейма.
// Для менеджерского фильтра запрос уходит c role=ADMIN,PROJECT_MANAGER,
// для members параметр role не передаётся вовсе.
func (c *Client) SearchUsers(ctx context.Context, query string, filter service.RoleFilter) ([]model.User, error) {
	target := c.BaseURL + "/users/?username=" + url.QueryEscape(query)
	if filter != service.FilterMembers {
		target += "&role=ADMIN,PROJECT_MANAGER"
	}

	var resp struct {
		Users []model.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, target, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// CreateTeam создаёт команду с начальным составом.
func (c *Client) CreateTeam(ctx context.Context, team model.Team) (model.Team, error) {
	var resp struct {
		Team model.Team `json:"team"`
	}
	err := c.do(ctx, http.MethodPost, c.BaseURL+"/teams/", team, &resp)
	return resp.Team, err
}

// Team возвращает команду с её участниками.
func (c *Client) Team(ctx context.Context, teamID string) (model.Team, error) {
	var resp struct {
		Team model.Team `json:"team"`
	}
	err := c.do(ctx, http.MethodGet, c.BaseURL+"/teams/"+url.PathEscape(teamID)+"/", nil, &resp)
	return resp.Team, err
}

// SaveMembers целиком заменяет список участников команды.
func (c *Client) SaveMembers(ctx context.Context, teamID string, members []model.TeamMember) (model.Team, error) {
	body := struct {
		Members []model.TeamMember `json:"members"`
	}{Members: members}

	var resp struct {
		Team model.Team `json:"team"`
	}
	err := c.do(ctx, http.MethodPut, c.BaseURL+"/teams/"+url.PathEscape(teamID)+"/members/", body, &resp)
	return resp.Team, err
}

// RemoveMember убирает одного участника из команды.
func (c *Client) RemoveMember(ctx context.Context, teamID, username string) (model.Team, error) {
	var resp struct {
		Team model.Team `json:"team"`
	}
	err := c.do(ctx, http.MethodDelete, c.BaseURL+"/teams/"+url.PathEscape(teamID)+"/members/"+url.PathEscape(username), nil, &resp)
	return resp.Team, err
}

// JoinRequests возвращает ожидающие заявки команды.
func (c *Client) JoinRequests(ctx context.Context, teamID string) ([]model.JoinRequest, error) {
	var resp struct {
		Requests []model.JoinRequest `json:"requests"`
	}
	err := c.do(ctx, http.MethodGet, c.BaseURL+"/teams/"+url.PathEscape(teamID)+"/join-requests/", nil, &resp)
	return resp.Requests, err
}

// ApplyToTeam подаёт заявку пользователя на вступление.
func (c *Client) ApplyToTeam(ctx context.Context, teamID, username string) error {
	body := struct {
		Username string `json:"username"`
	}{Username: username}
	return c.do(ctx, http.MethodPost, c.BaseURL+"/teams/"+url.PathEscape(teamID)+"/actions/join/", body, nil)
}

// RespondJoinRequest отправляет решение по заявке: фиксированная форма
// join-response с ролью MEMBER и действием accept либо reject.
func (c *Client) RespondJoinRequest(ctx context.Context, teamID, username string, action model.JoinAction) error {
	body := struct {
		Username string `json:"username"`
		Role     string `json:"role"`
		Type     string `json:"type"`
		Action   string `json:"action"`
	}{
		Username: username,
		Role:     string(model.RoleMember),
		Type:     "join-response",
		Action:   string(action),
	}
	return c.do(ctx, http.MethodPatch, c.BaseURL+"/teams/"+url.PathEscape(teamID)+"/actions/join/", body, nil)
}

// UpdateProject сохраняет метаданные проекта.
func (c *Client) UpdateProject(ctx context.Context, p model.Project) (model.Project, error) {
	var resp struct {
		Project model.Project `json:"project"`
	}
	err := c.do(ctx, http.MethodPatch, c.BaseURL+"/projects/"+url.PathEscape(p.ProjectID)+"/", p, &resp)
	return resp.Project, err
}

func (c *Client) do(ctx context.Context, method, target string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Token "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{
			Status:  resp.StatusCode,
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
