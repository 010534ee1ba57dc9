package userauth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golden-vcr/eventsub"
)

var testSubscriptions = eventsub.RequiredSubscriptions{
	{
		Type:    eventsub.EventTypeChannelFollow,
		Version: "2",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
			ModeratorUserID:   "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{"moderator:read:followers"},
	},
	{
		Type:    eventsub.EventTypeChannelCheer,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{"bits:read"},
	},
}

func Test_Server_handleStartAuth(t *testing.T) {
	s := NewServer("https://my-cool-service.com", "my-client-id", testSubscriptions)
	req := httptest.NewRequest(http.MethodGet, "/userauth/start", nil)
	res := httptest.NewRecorder()
	s.handleStartAuth(res, req)

	assert.Equal(t, http.StatusSeeOther, res.Code)
	u, err := url.Parse(res.Header().Get("location"))
	assert.NoError(t, err)
	assert.Equal(t, "id.twitch.tv", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "my-client-id", q.Get("client_id"))
	assert.Equal(t, "https://my-cool-service.com/userauth/finish", q.Get("redirect_uri"))
	assert.ElementsMatch(t, []string{"bits:read", "moderator:read:followers"}, strings.Split(q.Get("scope"), " "))

	// The 'state' param must carry a CSRF token that the server will honor
	// when the user lands back on the redirect URI
	assert.True(t, s.csrf.redeem(q.Get("state")))
}

func Test_Server_handleFinishAuth(t *testing.T) {
	tests := []struct {
		name       string
		prepareUrl func(s *Server) string
		wantStatus int
		wantBody   string
	}{
		{
			"request without state param is rejected",
			func(s *Server) string {
				return "/userauth/finish?scope=bits:read+moderator:read:followers"
			},
			http.StatusBadRequest,
			"'state' value not found in URL query params",
		},
		{
			"request with unrecognized state param is rejected",
			func(s *Server) string {
				return "/userauth/finish?state=bogus&scope=bits:read+moderator:read:followers"
			},
			http.StatusBadRequest,
			"CSRF token verification failed",
		},
		{
			"request without scope param is rejected",
			func(s *Server) string {
				return fmt.Sprintf("/userauth/finish?state=%s", s.csrf.issue())
			},
			http.StatusBadRequest,
			"'scope' value not found in URL query params",
		},
		{
			"request missing a required scope is rejected",
			func(s *Server) string {
				return fmt.Sprintf("/userauth/finish?state=%s&scope=bits:read", s.csrf.issue())
			},
			http.StatusBadRequest,
			"required scope 'moderator:read:followers' was not granted",
		},
		{
			"request granting all required scopes succeeds",
			func(s *Server) string {
				return fmt.Sprintf("/userauth/finish?state=%s&scope=bits:read+moderator:read:followers", s.csrf.issue())
			},
			http.StatusOK,
			"<!DOCTYPE html><html><head><title>OK</title></head><body><h1>Success!</h1><p>Access granted. You may close this window.</p></body></html>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer("https://my-cool-service.com", "my-client-id", testSubscriptions)
			req := httptest.NewRequest(http.MethodGet, tt.prepareUrl(s), nil)
			res := httptest.NewRecorder()
			s.handleFinishAuth(res, req)

			assert.Equal(t, tt.wantStatus, res.Code)
			body := strings.TrimSuffix(res.Body.String(), "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
