package main

import (
	"database/sql"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/internal/auth"
	"github.com/mcdev12/gridiron/internal/events"
	"github.com/mcdev12/gridiron/internal/fantasyteam"
	"github.com/mcdev12/gridiron/internal/leagues"
	"github.com/mcdev12/gridiron/internal/matchups"
	"github.com/mcdev12/gridiron/internal/players"
	"github.com/mcdev12/gridiron/internal/roster"
	"github.com/mcdev12/gridiron/internal/users"
)

type Services struct {
	Users       *users.Service
	Leagues     *leagues.Service
	Players     *players.Service
	FantasyTeam *fantasyteam.Service
	Matchups    *matchups.Service
}

func setupServices(database *sql.DB, publisher events.Publisher, config *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	tokens := setupTokenIssuer()
	authMW := auth.NewMiddleware(tokens)

	// Users
	userRepo := users.NewRepository(database)
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp, tokens, authMW)

	// Leagues
	leagueRepo := leagues.NewRepository(database)
	leagueApp := leagues.NewApp(leagueRepo, userRepo, publisher)
	leagueService := leagues.NewService(leagueApp, userApp, authMW)

	// Players
	playerRepo := players.NewRepository(database)
	playerApp := players.NewApp(playerRepo)
	playerService := players.NewService(playerApp)

	// Roster
	rosterRepo := roster.NewRepository(database)
	rosterApp := roster.NewApp(rosterRepo, playerRepo)

	// FantasyTeam
	teamRepo := fantasyteam.NewRepository(database)
	teamApp := fantasyteam.NewApp(teamRepo)
	teamService := fantasyteam.NewService(teamApp, rosterApp, userApp, leagueApp, authMW)

	// Matchups
	matchupRepo := matchups.NewRepository(database)
	matchupApp := matchups.NewApp(matchupRepo, config.Matchups.StrictPairings)
	matchupService := matchups.NewService(matchupApp)

	return &Services{
		Users:       userService,
		Leagues:     leagueService,
		Players:     playerService,
		FantasyTeam: teamService,
		Matchups:    matchupService,
	}
}

func setupTokenIssuer() *auth.TokenIssuer {
	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_TTL")
	}

	return auth.NewTokenIssuer([]byte(secret), ttl, clockwork.NewRealClock())
}
