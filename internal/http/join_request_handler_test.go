package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "team-membership-service/internal/http"
	"team-membership-service/internal/http/mocks"
	"team-membership-service/internal/model"
	"team-membership-service/internal/service"
)

const testToken = "svc-token"

func newTestHandler(teams *mocks.TeamService, users *mocks.UserService, requests *mocks.JoinRequestService, projects *mocks.ProjectService) *httpapi.Handler {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return httpapi.NewHandler(teams, users, requests, projects, logger, testToken)
}

func TestHandler_JoinRespond(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		authHeader     string
		mockBehavior   func(rs *mocks.JoinRequestService)
		expectedStatus int
	}{
		{
			name:       "Success: accept",
			body:       `{"username": "ann", "role": "MEMBER", "type": "join-response", "action": "accept"}`,
			authHeader: "Token " + testToken,
			mockBehavior: func(rs *mocks.JoinRequestService) {
				rs.On("Respond", mock.Anything, "mappers", "ann", model.ActionAccept).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "Success: reject with Bearer scheme",
			body:       `{"username": "ann", "role": "MEMBER", "type": "join-response", "action": "reject"}`,
			authHeader: "Bearer " + testToken,
			mockBehavior: func(rs *mocks.JoinRequestService) {
				rs.On("Respond", mock.Anything, "mappers", "ann", model.ActionReject).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unauthorized: token missing",
			body:           `{"username": "ann", "role": "MEMBER", "type": "join-response", "action": "accept"}`,
			authHeader:     "",
			mockBehavior:   func(rs *mocks.JoinRequestService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Unauthorized: wrong token",
			body:           `{"username": "ann", "role": "MEMBER", "type": "join-response", "action": "accept"}`,
			authHeader:     "Token nope",
			mockBehavior:   func(rs *mocks.JoinRequestService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Bad Request: invalid JSON",
			body:           `{"username": "broken`,
			authHeader:     "Token " + testToken,
			mockBehavior:   func(rs *mocks.JoinRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: wrong type",
			body:           `{"username": "ann", "role": "MEMBER", "type": "join-request", "action": "accept"}`,
			authHeader:     "Token " + testToken,
			mockBehavior:   func(rs *mocks.JoinRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: unknown action",
			body:           `{"username": "ann", "role": "MEMBER", "type": "join-response", "action": "defer"}`,
			authHeader:     "Token " + testToken,
			mockBehavior:   func(rs *mocks.JoinRequestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "Conflict: duplicate respond still in flight",
			body:       `{"username": "ann", "role": "MEMBER", "type": "join-response", "action": "accept"}`,
			authHeader: "Token " + testToken,
			mockBehavior: func(rs *mocks.JoinRequestService) {
				rs.On("Respond", mock.Anything, "mappers", "ann", model.ActionAccept).
					Return(service.ErrConflict("REQUEST_IN_FLIGHT", "join request is already being processed"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamSvc := new(mocks.TeamService)
			userSvc := new(mocks.UserService)
			requestSvc := new(mocks.JoinRequestService)
			projectSvc := new(mocks.ProjectService)
			tt.mockBehavior(requestSvc)

			h := newTestHandler(teamSvc, userSvc, requestSvc, projectSvc)

			req := httptest.NewRequest("PATCH", "/teams/mappers/actions/join/", bytes.NewBufferString(tt.body))
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			requestSvc.AssertExpectations(t)
		})
	}
}

func TestHandler_JoinRequestList_Empty(t *testing.T) {
	teamSvc := new(mocks.TeamService)
	userSvc := new(mocks.UserService)
	requestSvc := new(mocks.JoinRequestService)
	projectSvc := new(mocks.ProjectService)

	requestSvc.On("List", mock.Anything, "mappers").Return([]model.JoinRequest{}, nil)

	h := newTestHandler(teamSvc, userSvc, requestSvc, projectSvc)

	req := httptest.NewRequest("GET", "/teams/mappers/join-requests/", nil)
	w := httptest.NewRecorder()

	h.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Пустой список сериализуется как [], не null
	assert.JSONEq(t, `{"requests": []}`, w.Body.String())
	requestSvc.AssertExpectations(t)
}
