package leagues

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/internal/auth"
	"github.com/mcdev12/gridiron/internal/httputil"
	"github.com/mcdev12/gridiron/internal/models"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]LeagueDetail, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*LeagueDetail, error)
	CreateLeague(ctx context.Context, commissionerID uuid.UUID, req CreateLeagueRequest) (*LeagueDetail, error)
	UpdateLeague(ctx context.Context, requesterID, id uuid.UUID, req UpdateLeagueRequest) (*LeagueDetail, error)
	DeleteLeague(ctx context.Context, requesterID, id uuid.UUID) error
	JoinLeague(ctx context.Context, leagueID, userID uuid.UUID, teamName string) (*models.FantasyTeam, error)
}

// UsersApp is the cross-domain lookup used to embed commissioner and
// owner details in responses.
type UsersApp interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes the league endpoints over HTTP
type Service struct {
	app      LeaguesApp
	usersApp UsersApp
	authMW   *auth.Middleware
}

// NewService creates a new leagues HTTP service
func NewService(app LeaguesApp, usersApp UsersApp, authMW *auth.Middleware) *Service {
	return &Service{app: app, usersApp: usersApp, authMW: authMW}
}

// RegisterRoutes attaches the league endpoints to the mux. Reads are
// public; every mutation requires an authenticated caller.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/leagues", s.handleList)
	mux.HandleFunc("POST /api/leagues", s.authMW.RequireAuth(s.handleCreate))
	mux.HandleFunc("GET /api/leagues/{id}", s.handleGet)
	mux.HandleFunc("PUT /api/leagues/{id}", s.authMW.RequireAuth(s.handleUpdate))
	mux.HandleFunc("PATCH /api/leagues/{id}", s.authMW.RequireAuth(s.handleUpdate))
	mux.HandleFunc("DELETE /api/leagues/{id}", s.authMW.RequireAuth(s.handleDelete))
	mux.HandleFunc("POST /api/leagues/{id}/join", s.authMW.RequireAuth(s.handleJoin))
}

// leagueResponse embeds the commissioner account in the league payload.
type leagueResponse struct {
	LeagueDetail
	Commissioner *models.User `json:"commissioner"`
}

// teamResponse embeds the owner and league in the team payload.
type teamResponse struct {
	models.FantasyTeam
	Owner  *models.User    `json:"owner"`
	League *leagueResponse `json:"league"`
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	leagues, err := s.app.ListLeagues(r.Context(), filter)
	if err != nil {
		s.respondError(w, err)
		return
	}

	// Commissioners repeat across leagues; resolve each once.
	commissioners := map[uuid.UUID]*models.User{}
	out := make([]leagueResponse, 0, len(leagues))
	for _, league := range leagues {
		commissioner, ok := commissioners[league.CommissionerID]
		if !ok {
			commissioner = s.lookupUser(r.Context(), league.CommissionerID)
			commissioners[league.CommissionerID] = commissioner
		}
		out = append(out, leagueResponse{LeagueDetail: league, Commissioner: commissioner})
	}
	httputil.JSON(w, http.StatusOK, out)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req CreateLeagueRequest
	if err := httputil.Decode(r, &req, false); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	league, err := s.app.CreateLeague(r.Context(), userID, req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, s.leagueToResponse(r.Context(), league))
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}

	league, err := s.app.GetLeague(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, s.leagueToResponse(r.Context(), league))
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}

	var req UpdateLeagueRequest
	if err := httputil.Decode(r, &req, false); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	league, err := s.app.UpdateLeague(r.Context(), userID, id, req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, s.leagueToResponse(r.Context(), league))
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}

	if err := s.app.DeleteLeague(r.Context(), userID, id); err != nil {
		s.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleJoin(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}

	var req JoinLeagueRequest
	if err := httputil.Decode(r, &req, true); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := s.app.JoinLeague(r.Context(), id, userID, req.TeamName)
	if err != nil {
		s.respondError(w, err)
		return
	}

	league, err := s.app.GetLeague(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Successfully joined %s", league.Name),
		"team": teamResponse{
			FantasyTeam: *team,
			Owner:       s.lookupUser(r.Context(), team.OwnerID),
			League:      s.leagueToResponse(r.Context(), league),
		},
	})
}

func (s *Service) leagueToResponse(ctx context.Context, league *LeagueDetail) *leagueResponse {
	return &leagueResponse{
		LeagueDetail: *league,
		Commissioner: s.lookupUser(ctx, league.CommissionerID),
	}
}

func (s *Service) lookupUser(ctx context.Context, id uuid.UUID) *models.User {
	user, err := s.usersApp.GetUser(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("user_id", id.String()).Msg("failed to resolve user for response")
		return nil
	}
	return user
}

func parseListFilter(r *http.Request) (ListLeaguesFilter, error) {
	var filter ListLeaguesFilter
	q := r.URL.Query()

	if v := q.Get("is_public"); v != "" {
		isPublic := strings.EqualFold(v, "true")
		filter.IsPublic = &isPublic
	}
	if v := q.Get("league_type"); v != "" {
		leagueType := models.LeagueType(v)
		filter.LeagueType = &leagueType
	}
	if v := q.Get("has_spots"); strings.EqualFold(v, "true") {
		filter.HasSpots = true
	}
	return filter, nil
}

func (s *Service) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrNotCommissioner):
		httputil.Error(w, http.StatusForbidden, ErrNotCommissioner.Error())
	case errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrLeagueFull), errors.Is(err, ErrValidation):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrJoinConflict):
		httputil.Error(w, http.StatusConflict, err.Error())
	default:
		httputil.Error(w, http.StatusInternalServerError, "internal error")
	}
}
