package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mcdev12/gridiron/internal/auth"
	"github.com/mcdev12/gridiron/internal/httputil"
	"github.com/mcdev12/gridiron/internal/models"
)

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error)
}

// Service exposes the account endpoints over HTTP
type Service struct {
	app    UsersApp
	tokens *auth.TokenIssuer
	authMW *auth.Middleware
}

// NewService creates a new users HTTP service
func NewService(app UsersApp, tokens *auth.TokenIssuer, authMW *auth.Middleware) *Service {
	return &Service{app: app, tokens: tokens, authMW: authMW}
}

// RegisterRoutes attaches the account endpoints to the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.authMW.RequireAuth(s.handleLogout))
	mux.HandleFunc("GET /api/auth/me", s.authMW.RequireAuth(s.handleCurrentUser))
	mux.HandleFunc("PATCH /api/auth/profile", s.authMW.RequireAuth(s.handleUpdateProfile))
}

type sessionResponse struct {
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
	Message string       `json:"message"`
}

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httputil.Decode(r, &req, false); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.app.Register(r.Context(), req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	httputil.JSON(w, http.StatusCreated, sessionResponse{
		User:    user,
		Token:   token,
		Message: "Registration successful",
	})
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httputil.Decode(r, &req, false); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.app.Login(r.Context(), req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	httputil.JSON(w, http.StatusOK, sessionResponse{
		User:    user,
		Token:   token,
		Message: "Login successful",
	})
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; the client discards the token.
	httputil.JSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (s *Service) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	user, err := s.app.GetUser(r.Context(), userID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, user)
}

func (s *Service) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req UpdateProfileRequest
	if err := httputil.Decode(r, &req, false); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.app.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, user)
}

func (s *Service) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountDisabled):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	default:
		httputil.Error(w, http.StatusInternalServerError, "internal error")
	}
}
