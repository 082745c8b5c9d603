package leagues

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/internal/events"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/sqlutil"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]LeagueDetail, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*LeagueDetail, error)
	CreateLeague(ctx context.Context, commissionerID uuid.UUID, req CreateLeagueRequest) (*LeagueDetail, error)
	UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*LeagueDetail, error)
	DeleteLeague(ctx context.Context, id uuid.UUID) error
	JoinLeague(ctx context.Context, leagueID, ownerID uuid.UUID, teamName string) (*models.FantasyTeam, error)
}

// UsersRepository defines what the app layer needs from the users domain
type UsersRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// App handles league business logic
type App struct {
	repo      LeaguesRepository
	usersRepo UsersRepository
	publisher events.Publisher
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository, usersRepo UsersRepository, publisher events.Publisher) *App {
	return &App{
		repo:      repo,
		usersRepo: usersRepo,
		publisher: publisher,
	}
}

// CanManage reports whether userID may mutate the league. Only the
// commissioner can edit or delete a league.
func CanManage(userID uuid.UUID, league *models.League) bool {
	return league.CommissionerID == userID
}

// ListLeagues returns active leagues matching the filter.
func (a *App) ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]LeagueDetail, error) {
	leagues, err := a.repo.ListLeagues(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*LeagueDetail, error) {
	return a.repo.GetLeague(ctx, id)
}

// CreateLeague creates a new league with the caller as commissioner.
func (a *App) CreateLeague(ctx context.Context, commissionerID uuid.UUID, req CreateLeagueRequest) (*LeagueDetail, error) {
	applyCreateDefaults(&req)
	if err := a.validateCreateLeagueRequest(req); err != nil {
		return nil, err
	}

	league, err := a.repo.CreateLeague(ctx, commissionerID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	a.publish(ctx, events.New(events.TypeLeagueCreated, events.LeagueCreatedPayload{
		LeagueID:       league.ID,
		CommissionerID: commissionerID,
		Name:           league.Name,
	}))

	log.Info().
		Str("league", league.Name).
		Str("league_type", string(league.LeagueType)).
		Str("commissioner_id", commissionerID.String()).
		Msg("created league")
	return league, nil
}

// UpdateLeague applies a partial update after the commissioner check.
func (a *App) UpdateLeague(ctx context.Context, requesterID, id uuid.UUID, req UpdateLeagueRequest) (*LeagueDetail, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanManage(requesterID, &league.League) {
		return nil, ErrNotCommissioner
	}
	if err := a.validateUpdateLeagueRequest(req); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateLeague(ctx, id, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("league", updated.Name).Msg("updated league")
	return updated, nil
}

// DeleteLeague removes a league after the commissioner check.
func (a *App) DeleteLeague(ctx context.Context, requesterID, id uuid.UUID) error {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return err
	}
	if !CanManage(requesterID, &league.League) {
		return ErrNotCommissioner
	}

	if err := a.repo.DeleteLeague(ctx, id); err != nil {
		return err
	}

	log.Info().Str("league", league.Name).Msg("deleted league")
	return nil
}

// JoinLeague adds the user to a league by creating a fantasy team. The
// repository runs the check-and-insert atomically; one conflicting
// attempt is retried before failing.
func (a *App) JoinLeague(ctx context.Context, leagueID, userID uuid.UUID, teamName string) (*models.FantasyTeam, error) {
	if teamName == "" {
		user, err := a.usersRepo.GetUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user: %w", err)
		}
		teamName = fmt.Sprintf("%s's Team", user.Username)
	}

	team, err := a.repo.JoinLeague(ctx, leagueID, userID, teamName)
	if isRetryableJoinError(err) {
		log.Warn().
			Str("league_id", leagueID.String()).
			Str("user_id", userID.String()).
			Msg("join transaction conflicted, retrying once")
		team, err = a.repo.JoinLeague(ctx, leagueID, userID, teamName)
		if isRetryableJoinError(err) {
			return nil, ErrJoinConflict
		}
	}
	if err != nil {
		return nil, err
	}

	a.publish(ctx, events.New(events.TypeTeamJoined, events.TeamJoinedPayload{
		LeagueID: leagueID,
		TeamID:   team.ID,
		OwnerID:  userID,
		TeamName: team.Name,
	}))

	log.Info().
		Str("league_id", leagueID.String()).
		Str("team", team.Name).
		Str("owner_id", userID.String()).
		Msg("user joined league")
	return team, nil
}

// isRetryableJoinError matches transaction conflicts, not business-rule
// failures, which are final.
func isRetryableJoinError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyMember) || errors.Is(err, ErrLeagueFull) {
		return false
	}
	return errors.Is(err, ErrJoinConflict) || sqlutil.IsSerializationFailure(err)
}

func (a *App) publish(ctx context.Context, event events.Event) {
	if err := a.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("event_type", event.Type).Msg("failed to publish event")
	}
}

func applyCreateDefaults(req *CreateLeagueRequest) {
	if req.LeagueType == "" {
		req.LeagueType = models.LeagueTypeStandard
	}
	if req.ScoringType == "" {
		req.ScoringType = models.ScoringTypeHeadToHead
	}
	if req.MaxTeams == 0 {
		req.MaxTeams = 12
	}
	if req.SeasonYear == 0 {
		req.SeasonYear = 2024
	}
}

func (a *App) validateCreateLeagueRequest(req CreateLeagueRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := validateLeagueType(req.LeagueType); err != nil {
		return err
	}
	if err := validateScoringType(req.ScoringType); err != nil {
		return err
	}
	if req.MaxTeams < 1 {
		return fmt.Errorf("%w: max_teams must be positive", ErrValidation)
	}
	if req.EntryFee < 0 || req.PrizePool < 0 {
		return fmt.Errorf("%w: entry_fee and prize_pool cannot be negative", ErrValidation)
	}
	return nil
}

func (a *App) validateUpdateLeagueRequest(req UpdateLeagueRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if req.LeagueType != nil {
		if err := validateLeagueType(*req.LeagueType); err != nil {
			return err
		}
	}
	if req.ScoringType != nil {
		if err := validateScoringType(*req.ScoringType); err != nil {
			return err
		}
	}
	if req.MaxTeams != nil && *req.MaxTeams < 1 {
		return fmt.Errorf("%w: max_teams must be positive", ErrValidation)
	}
	return nil
}

func validateLeagueType(leagueType models.LeagueType) error {
	switch leagueType {
	case models.LeagueTypeStandard, models.LeagueTypePPR, models.LeagueTypeHalfPPR,
		models.LeagueTypeDynasty, models.LeagueTypeKeeper:
		return nil
	default:
		return fmt.Errorf("%w: invalid league type: %s", ErrValidation, leagueType)
	}
}

func validateScoringType(scoringType models.ScoringType) error {
	switch scoringType {
	case models.ScoringTypeHeadToHead, models.ScoringTypePoints, models.ScoringTypeRoto:
		return nil
	default:
		return fmt.Errorf("%w: invalid scoring type: %s", ErrValidation, scoringType)
	}
}
