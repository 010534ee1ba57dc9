package userauth

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/golden-vcr/eventsub"
)

type Server struct {
	origin                string
	twitchClientId        string
	requiredSubscriptions eventsub.RequiredSubscriptions
	csrf                  *csrfStore
}

func NewServer(origin, twitchClientId string, required eventsub.RequiredSubscriptions) *Server {
	return &Server{
		origin:                origin,
		twitchClientId:        twitchClientId,
		requiredSubscriptions: required,
		csrf:                  newCsrfStore(),
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.Path("/userauth/start").Methods("GET").HandlerFunc(s.handleStartAuth)
	r.Path("/userauth/finish").Methods("GET").HandlerFunc(s.handleFinishAuth)
}

func (s *Server) handleStartAuth(res http.ResponseWriter, req *http.Request) {
	u, err := url.Parse("https://id.twitch.tv/oauth2/authorize")
	if err != nil {
		panic(err)
	}
	q := u.Query()
	q.Add("response_type", "code")
	q.Add("client_id", s.twitchClientId)
	q.Add("redirect_uri", s.origin+"/userauth/finish")
	q.Add("scope", strings.Join(s.requiredSubscriptions.GetRequiredUserScopes(), " "))
	q.Add("state", s.csrf.issue())
	u.RawQuery = q.Encode()

	res.Header().Set("location", u.String())
	res.WriteHeader(http.StatusSeeOther)
}

func (s *Server) handleFinishAuth(res http.ResponseWriter, req *http.Request) {
	// Verify the CSRF token carried in the 'state' parameter
	tokenValue := req.URL.Query().Get("state")
	if tokenValue == "" {
		http.Error(res, "'state' value not found in URL query params", http.StatusBadRequest)
		return
	}
	if !s.csrf.redeem(tokenValue) {
		http.Error(res, "CSRF token verification failed", http.StatusBadRequest)
		return
	}

	// Verify that all requested scopes were granted
	scopeValue := req.URL.Query().Get("scope")
	if scopeValue == "" {
		http.Error(res, "'scope' value not found in URL query params", http.StatusBadRequest)
		return
	}
	granted := make(map[string]bool)
	for _, scope := range strings.Split(scopeValue, " ") {
		granted[scope] = true
	}
	for _, desiredScope := range s.requiredSubscriptions.GetRequiredUserScopes() {
		if !granted[desiredScope] {
			http.Error(res, fmt.Sprintf("required scope '%s' was not granted", desiredScope), http.StatusBadRequest)
			return
		}
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.Write([]byte("<!DOCTYPE html><html><head><title>OK</title></head><body><h1>Success!</h1><p>Access granted. You may close this window.</p></body></html>"))
}
