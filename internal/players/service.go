package players

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mcdev12/gridiron/internal/httputil"
	"github.com/mcdev12/gridiron/internal/models"
)

// PlayersApp defines what the service layer needs from the players application
type PlayersApp interface {
	ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.NFLPlayer, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.NFLPlayer, error)
}

// Service exposes the read-only player catalog over HTTP
type Service struct {
	app PlayersApp
}

// NewService creates a new players HTTP service
func NewService(app PlayersApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes attaches the catalog endpoints to the mux. Both are
// public reads.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/players", s.handleList)
	mux.HandleFunc("GET /api/players/{id}", s.handleGet)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	var filter ListPlayersFilter
	q := r.URL.Query()
	if v := q.Get("position"); v != "" {
		position := models.Position(v)
		filter.Position = &position
	}
	if v := q.Get("team"); v != "" {
		filter.NFLTeam = &v
	}

	playerList, err := s.app.ListPlayers(r.Context(), filter)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if playerList == nil {
		playerList = []models.NFLPlayer{}
	}
	httputil.JSON(w, http.StatusOK, playerList)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}

	player, err := s.app.GetPlayer(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.Error(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httputil.JSON(w, http.StatusOK, player)
}
