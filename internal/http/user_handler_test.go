package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"team-membership-service/internal/http/mocks"
	"team-membership-service/internal/model"
	"team-membership-service/internal/service"
)

func TestHandler_UserSearch(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockBehavior   func(us *mocks.UserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Role param present: managers filter",
			target: "/users/?username=ann&role=ADMIN,PROJECT_MANAGER",
			mockBehavior: func(us *mocks.UserService) {
				us.On("Search", mock.Anything, "ann", service.FilterManagers).
					Return([]model.User{{Username: "ann_pm", Role: model.RoleProjectManager}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"users": [{"username": "ann_pm", "role": "PROJECT_MANAGER"}]}`,
		},
		{
			name:   "No role param: members filter",
			target: "/users/?username=ann",
			mockBehavior: func(us *mocks.UserService) {
				us.On("Search", mock.Anything, "ann", service.FilterMembers).
					Return([]model.User{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"users": []}`,
		},
		{
			name:           "Bad Request: unknown role value",
			target:         "/users/?username=ann&role=SUPERUSER",
			mockBehavior:   func(us *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamSvc := new(mocks.TeamService)
			userSvc := new(mocks.UserService)
			requestSvc := new(mocks.JoinRequestService)
			projectSvc := new(mocks.ProjectService)
			tt.mockBehavior(userSvc)

			h := newTestHandler(teamSvc, userSvc, requestSvc, projectSvc)

			req := httptest.NewRequest("GET", tt.target, nil)
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			userSvc.AssertExpectations(t)
		})
	}
}
