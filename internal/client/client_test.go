package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"team-membership-service/internal/client"
	"team-membership-service/internal/model"
	"team-membership-service/internal/service"
)

func TestClient_SearchUsers_QueryString(t *testing.T) {
	tests := []struct {
		name         string
		filter       service.RoleFilter
		wantRawQuery string
	}{
		{
			name:         "Managers filter carries the role set",
			filter:       service.FilterManagers,
			wantRawQuery: "username=ann&role=ADMIN,PROJECT_MANAGER",
		},
		{
			name:         "Members filter sends no role param",
			filter:       service.FilterMembers,
			wantRawQuery: "username=ann",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRawQuery string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRawQuery = r.URL.RawQuery
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"users": []}`))
			}))
			defer srv.Close()

			c := client.New(srv.URL, "")
			users, err := c.SearchUsers(context.Background(), "ann", tt.filter)

			assert.NoError(t, err)
			assert.Empty(t, users)
			assert.Equal(t, tt.wantRawQuery, gotRawQuery)
		})
	}
}

func TestClient_RespondJoinRequest_Payload(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"team_id": "mappers", "username": "ann", "action": "accept"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, "secret")
	err := c.RespondJoinRequest(context.Background(), "mappers", "ann", model.ActionAccept)

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/teams/mappers/actions/join/", gotPath)
	assert.Equal(t, "Token secret", gotAuth)
	assert.Equal(t, map[string]string{
		"username": "ann",
		"role":     "MEMBER",
		"type":     "join-response",
		"action":   "accept",
	}, gotBody)
}

func TestClient_APIErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": {"code": "REQUEST_IN_FLIGHT", "message": "join request is already being processed"}}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, "secret")
	err := c.RespondJoinRequest(context.Background(), "mappers", "ann", model.ActionReject)

	apiErr, ok := err.(*client.APIError)
	if assert.True(t, ok, "expected *client.APIError, got %T", err) {
		assert.Equal(t, http.StatusConflict, apiErr.Status)
		assert.Equal(t, "REQUEST_IN_FLIGHT", apiErr.Code)
	}
}
