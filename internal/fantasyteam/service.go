package fantasyteam

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/internal/auth"
	"github.com/mcdev12/gridiron/internal/httputil"
	"github.com/mcdev12/gridiron/internal/leagues"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/players"
	"github.com/mcdev12/gridiron/internal/roster"
)

// FantasyTeamApp defines what the service layer needs from the teams application
type FantasyTeamApp interface {
	GetMyTeams(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error)
	GetMyTeam(ctx context.Context, teamID, ownerID uuid.UUID) (*models.FantasyTeam, error)
}

// RosterApp defines what the service layer needs from the roster application
type RosterApp interface {
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]roster.Entry, error)
	AddPlayer(ctx context.Context, teamID uuid.UUID, req roster.AddPlayerRequest) (*models.Roster, error)
	DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error
	UpdateSlot(ctx context.Context, teamID, playerID uuid.UUID, req roster.UpdateSlotRequest) (*models.Roster, error)
}

// UsersApp resolves owners for response embedding
type UsersApp interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// LeaguesApp resolves leagues for response embedding
type LeaguesApp interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*leagues.LeagueDetail, error)
}

// Service exposes team and roster endpoints over HTTP. Everything here
// requires authentication and is scoped to the caller's own teams.
type Service struct {
	app        FantasyTeamApp
	rosterApp  RosterApp
	usersApp   UsersApp
	leaguesApp LeaguesApp
	authMW     *auth.Middleware
}

// NewService creates a new fantasy team HTTP service
func NewService(app FantasyTeamApp, rosterApp RosterApp, usersApp UsersApp, leaguesApp LeaguesApp, authMW *auth.Middleware) *Service {
	return &Service{
		app:        app,
		rosterApp:  rosterApp,
		usersApp:   usersApp,
		leaguesApp: leaguesApp,
		authMW:     authMW,
	}
}

// RegisterRoutes attaches the team endpoints to the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/teams", s.authMW.RequireAuth(s.handleListMine))
	mux.HandleFunc("GET /api/teams/{id}", s.authMW.RequireAuth(s.handleGet))
	mux.HandleFunc("GET /api/teams/{id}/roster", s.authMW.RequireAuth(s.handleGetRoster))
	mux.HandleFunc("POST /api/teams/{id}/roster", s.authMW.RequireAuth(s.handleAddPlayer))
	mux.HandleFunc("PATCH /api/teams/{id}/roster/{playerID}", s.authMW.RequireAuth(s.handleUpdateSlot))
	mux.HandleFunc("DELETE /api/teams/{id}/roster/{playerID}", s.authMW.RequireAuth(s.handleDropPlayer))
}

// teamResponse embeds the owner and league in the team payload.
type teamResponse struct {
	models.FantasyTeam
	Owner  *models.User          `json:"owner"`
	League *leagues.LeagueDetail `json:"league"`
}

func (s *Service) handleListMine(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.UserID(r.Context())

	teams, err := s.app.GetMyTeams(r.Context(), ownerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	out := make([]teamResponse, 0, len(teams))
	for _, team := range teams {
		out = append(out, s.teamToResponse(r.Context(), team))
	}
	httputil.JSON(w, http.StatusOK, out)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	team, ok := s.ownedTeam(w, r)
	if !ok {
		return
	}
	httputil.JSON(w, http.StatusOK, s.teamToResponse(r.Context(), *team))
}

func (s *Service) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	team, ok := s.ownedTeam(w, r)
	if !ok {
		return
	}

	entries, err := s.rosterApp.ListByTeam(r.Context(), team.ID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if entries == nil {
		entries = []roster.Entry{}
	}
	httputil.JSON(w, http.StatusOK, entries)
}

func (s *Service) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	team, ok := s.ownedTeam(w, r)
	if !ok {
		return
	}

	var req roster.AddPlayerRequest
	if err := httputil.Decode(r, &req, false); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.rosterApp.AddPlayer(r.Context(), team.ID, req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, entry)
}

func (s *Service) handleUpdateSlot(w http.ResponseWriter, r *http.Request) {
	team, ok := s.ownedTeam(w, r)
	if !ok {
		return
	}
	playerID, err := uuid.Parse(r.PathValue("playerID"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, roster.ErrNotOnRoster.Error())
		return
	}

	var req roster.UpdateSlotRequest
	if err := httputil.Decode(r, &req, false); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.rosterApp.UpdateSlot(r.Context(), team.ID, playerID, req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, entry)
}

func (s *Service) handleDropPlayer(w http.ResponseWriter, r *http.Request) {
	team, ok := s.ownedTeam(w, r)
	if !ok {
		return
	}
	playerID, err := uuid.Parse(r.PathValue("playerID"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, roster.ErrNotOnRoster.Error())
		return
	}

	if err := s.rosterApp.DropPlayer(r.Context(), team.ID, playerID); err != nil {
		s.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedTeam resolves the {id} path segment to a team owned by the
// caller, writing the error response itself on failure.
func (s *Service) ownedTeam(w http.ResponseWriter, r *http.Request) (*models.FantasyTeam, bool) {
	ownerID, _ := auth.UserID(r.Context())
	teamID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return nil, false
	}

	team, err := s.app.GetMyTeam(r.Context(), teamID, ownerID)
	if err != nil {
		s.respondError(w, err)
		return nil, false
	}
	return team, true
}

func (s *Service) teamToResponse(ctx context.Context, team models.FantasyTeam) teamResponse {
	resp := teamResponse{FantasyTeam: team}

	owner, err := s.usersApp.GetUser(ctx, team.OwnerID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", team.OwnerID.String()).Msg("failed to resolve owner for response")
	} else {
		resp.Owner = owner
	}

	league, err := s.leaguesApp.GetLeague(ctx, team.LeagueID)
	if err != nil {
		log.Warn().Err(err).Str("league_id", team.LeagueID.String()).Msg("failed to resolve league for response")
	} else {
		resp.League = league
	}
	return resp
}

func (s *Service) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, roster.ErrNotOnRoster):
		httputil.Error(w, http.StatusNotFound, roster.ErrNotOnRoster.Error())
	case errors.Is(err, players.ErrNotFound):
		httputil.Error(w, http.StatusBadRequest, "player not found")
	case errors.Is(err, roster.ErrValidation),
		errors.Is(err, roster.ErrInvalidSlot),
		errors.Is(err, roster.ErrPlayerAlreadyRostered):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	default:
		httputil.Error(w, http.StatusInternalServerError, "internal error")
	}
}
