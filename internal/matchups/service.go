package matchups

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mcdev12/gridiron/internal/httputil"
)

// MatchupsApp defines what the service layer needs from the app layer
type MatchupsApp interface {
	ListMatchups(ctx context.Context, filter ListMatchupsFilter) ([]MatchupDetail, error)
	GetMatchup(ctx context.Context, id uuid.UUID) (*MatchupDetail, error)
}

// Service exposes read-only matchup endpoints over HTTP. Scheduling and
// scoring happen through the app layer only.
type Service struct {
	app MatchupsApp
}

// NewService creates a new matchups HTTP service
func NewService(app MatchupsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes attaches the matchup endpoints to the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/matchups", s.handleList)
	mux.HandleFunc("GET /api/matchups/{id}", s.handleGet)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	matchups, err := s.app.ListMatchups(r.Context(), filter)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if matchups == nil {
		matchups = []MatchupDetail{}
	}
	httputil.JSON(w, http.StatusOK, matchups)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}

	matchup, err := s.app.GetMatchup(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, matchup)
}

func parseListFilter(r *http.Request) (ListMatchupsFilter, error) {
	var filter ListMatchupsFilter
	q := r.URL.Query()

	if raw := q.Get("league"); raw != "" {
		leagueID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid league filter")
		}
		filter.LeagueID = &leagueID
	}
	if raw := q.Get("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errors.New("invalid week filter")
		}
		filter.Week = &week
	}
	return filter, nil
}

func (s *Service) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	httputil.Error(w, http.StatusInternalServerError, "internal error")
}
