package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/gridiron/internal/auth"
)

func newUsersTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	app := NewApp(newFakeUsersRepo())
	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour, clockwork.NewRealClock())
	service := NewService(app, tokens, auth.NewMiddleware(tokens))

	mux := http.NewServeMux()
	service.RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, server *httptest.Server, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestAuthFlowHTTP(t *testing.T) {
	server := newUsersTestServer(t)

	// Register issues a token alongside the account.
	status, body := doJSON(t, server, http.MethodPost, "/api/auth/register", "", validRegisterRequest())
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Registration successful", body["message"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	_, leaked := user["password_hash"]
	assert.False(t, leaked)

	// The token works against a protected endpoint.
	status, me := doJSON(t, server, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", me["username"])

	// Login issues a fresh token.
	status, body = doJSON(t, server, http.MethodPost, "/api/auth/login", "", LoginRequest{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	// Profile updates apply to the authenticated account.
	status, updated := doJSON(t, server, http.MethodPatch, "/api/auth/profile", token, map[string]any{
		"favorite_team":     "KC",
		"ai_risk_tolerance": "aggressive",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "KC", updated["favorite_team"])
	assert.Equal(t, "aggressive", updated["ai_risk_tolerance"])

	status, body = doJSON(t, server, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Logout successful", body["message"])
}

func TestAuthFlowHTTP_Failures(t *testing.T) {
	server := newUsersTestServer(t)

	status, _ := doJSON(t, server, http.MethodPost, "/api/auth/register", "", validRegisterRequest())
	require.Equal(t, http.StatusCreated, status)

	// Duplicate username.
	status, body := doJSON(t, server, http.MethodPost, "/api/auth/register", "", validRegisterRequest())
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrUsernameTaken.Error(), body["error"])

	// Mismatched passwords.
	bad := validRegisterRequest()
	bad.Username = "someone"
	bad.Email = "someone@example.com"
	bad.PasswordConfirm = "different"
	status, _ = doJSON(t, server, http.MethodPost, "/api/auth/register", "", bad)
	assert.Equal(t, http.StatusBadRequest, status)

	// Wrong password.
	status, body = doJSON(t, server, http.MethodPost, "/api/auth/login", "", LoginRequest{Username: "alice", Password: "nope"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrInvalidCredentials.Error(), body["error"])

	// Protected endpoints without a token.
	status, _ = doJSON(t, server, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = doJSON(t, server, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
