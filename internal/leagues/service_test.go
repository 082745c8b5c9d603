package leagues

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/gridiron/internal/auth"
	"github.com/mcdev12/gridiron/internal/events"
	"github.com/mcdev12/gridiron/internal/models"
)

type leaguesTestServer struct {
	t         *testing.T
	server    *httptest.Server
	tokens    *auth.TokenIssuer
	repo      *fakeLeaguesRepo
	directory *fakeUserDirectory
}

func newLeaguesTestServer(t *testing.T) *leaguesTestServer {
	t.Helper()

	repo := newFakeLeaguesRepo()
	directory := &fakeUserDirectory{users: make(map[uuid.UUID]*models.User)}
	app := NewApp(repo, directory, events.NoopPublisher{})

	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour, clockwork.NewRealClock())
	service := NewService(app, directory, auth.NewMiddleware(tokens))

	mux := http.NewServeMux()
	service.RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &leaguesTestServer{t: t, server: server, tokens: tokens, repo: repo, directory: directory}
}

func (ts *leaguesTestServer) tokenFor(userID uuid.UUID) string {
	ts.t.Helper()
	token, err := ts.tokens.Issue(userID)
	require.NoError(ts.t, err)
	return token
}

// do sends a JSON request and decodes the response body into a generic map.
func (ts *leaguesTestServer) do(method, path, token string, body any) (int, map[string]any) {
	ts.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(ts.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.server.Client().Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(ts.t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp.StatusCode, decoded
}

func (ts *leaguesTestServer) doList(path string) (int, []map[string]any) {
	ts.t.Helper()

	resp, err := ts.server.Client().Get(ts.server.URL + path)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(ts.t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestLeagueLifecycleHTTP(t *testing.T) {
	ts := newLeaguesTestServer(t)
	alice := ts.directory.add("alice")
	bob := ts.directory.add("bob")

	// Creation requires authentication.
	status, _ := ts.do(http.MethodPost, "/api/leagues", "", CreateLeagueRequest{Name: "Sunday League"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, created := ts.do(http.MethodPost, "/api/leagues", ts.tokenFor(alice), CreateLeagueRequest{Name: "Sunday League"})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Sunday League", created["name"])
	assert.Equal(t, float64(12), created["spots_available"])
	commissioner, ok := created["commissioner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", commissioner["username"])

	leagueID := created["id"].(string)

	// Bob joins without naming a team and gets the default.
	status, joined := ts.do(http.MethodPost, "/api/leagues/"+leagueID+"/join", ts.tokenFor(bob), nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Successfully joined Sunday League", joined["message"])
	team := joined["team"].(map[string]any)
	assert.Equal(t, "bob's Team", team["name"])
	owner := team["owner"].(map[string]any)
	assert.Equal(t, "bob", owner["username"])

	// Joining twice fails no matter how many spots remain.
	status, body := ts.do(http.MethodPost, "/api/leagues/"+leagueID+"/join", ts.tokenFor(bob), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrAlreadyMember.Error(), body["error"])

	// Only the commissioner can rename or delete.
	status, body = ts.do(http.MethodPatch, "/api/leagues/"+leagueID, ts.tokenFor(bob), map[string]any{"name": "Bob's League"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, ErrNotCommissioner.Error(), body["error"])

	status, updated := ts.do(http.MethodPatch, "/api/leagues/"+leagueID, ts.tokenFor(alice), map[string]any{"name": "Monday League"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Monday League", updated["name"])

	status, _ = ts.do(http.MethodDelete, "/api/leagues/"+leagueID, ts.tokenFor(alice), nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = ts.do(http.MethodGet, "/api/leagues/"+leagueID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOfficeLeagueScenarioHTTP(t *testing.T) {
	ts := newLeaguesTestServer(t)
	alice := ts.directory.add("alice")
	bob := ts.directory.add("bob")
	carol := ts.directory.add("carol")

	status, created := ts.do(http.MethodPost, "/api/leagues", ts.tokenFor(alice), CreateLeagueRequest{
		Name:     "Office League",
		MaxTeams: 2,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(0), created["current_team_count"])
	joinPath := "/api/leagues/" + created["id"].(string) + "/join"

	// The commissioner takes a spot like anyone else.
	status, joined := ts.do(http.MethodPost, joinPath, ts.tokenFor(alice), nil)
	require.Equal(t, http.StatusCreated, status)
	team := joined["team"].(map[string]any)
	assert.Equal(t, "alice's Team", team["name"])
	league := team["league"].(map[string]any)
	assert.Equal(t, float64(1), league["current_team_count"])

	status, joined = ts.do(http.MethodPost, joinPath, ts.tokenFor(bob), nil)
	require.Equal(t, http.StatusCreated, status)
	league = joined["team"].(map[string]any)["league"].(map[string]any)
	assert.Equal(t, float64(2), league["current_team_count"])
	assert.Equal(t, float64(0), league["spots_available"])

	status, body := ts.do(http.MethodPost, joinPath, ts.tokenFor(carol), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrLeagueFull.Error(), body["error"])
}

func TestJoinFullLeagueHTTP(t *testing.T) {
	ts := newLeaguesTestServer(t)
	alice := ts.directory.add("alice")
	league := ts.repo.addLeague(alice, 1)

	carol := ts.directory.add("carol")
	status, _ := ts.do(http.MethodPost, fmt.Sprintf("/api/leagues/%s/join", league.ID), ts.tokenFor(carol), JoinLeagueRequest{TeamName: "Crushers"})
	require.Equal(t, http.StatusCreated, status)

	dave := ts.directory.add("dave")
	status, body := ts.do(http.MethodPost, fmt.Sprintf("/api/leagues/%s/join", league.ID), ts.tokenFor(dave), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrLeagueFull.Error(), body["error"])
}

func TestListLeaguesFiltersHTTP(t *testing.T) {
	ts := newLeaguesTestServer(t)
	alice := ts.directory.add("alice")

	full := ts.repo.addLeague(alice, 1)
	open := ts.repo.addLeague(alice, 4)

	carol := ts.directory.add("carol")
	status, _ := ts.do(http.MethodPost, fmt.Sprintf("/api/leagues/%s/join", full.ID), ts.tokenFor(carol), nil)
	require.Equal(t, http.StatusCreated, status)

	status, all := ts.doList("/api/leagues")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, all, 2)

	status, withSpots := ts.doList("/api/leagues?has_spots=true")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, withSpots, 1)
	assert.Equal(t, open.ID.String(), withSpots[0]["id"])

	status, publicOnly := ts.doList("/api/leagues?is_public=false")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, publicOnly, 0)
}

func TestGetLeagueBadIDHTTP(t *testing.T) {
	ts := newLeaguesTestServer(t)

	status, body := ts.do(http.MethodGet, "/api/leagues/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, ErrNotFound.Error(), body["error"])
}
