package leagues

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/gridiron/internal/events"
	"github.com/mcdev12/gridiron/internal/models"
)

// fakeLeaguesRepo keeps leagues and their teams in memory. JoinLeague
// holds a mutex for the whole check-and-insert, mirroring the
// serializable transaction the real repository runs.
type fakeLeaguesRepo struct {
	mu      sync.Mutex
	leagues map[uuid.UUID]*models.League
	teams   map[uuid.UUID][]models.FantasyTeam

	// joinFailures, when positive, makes that many JoinLeague calls fail
	// with a serialization error before succeeding.
	joinFailures int
}

func newFakeLeaguesRepo() *fakeLeaguesRepo {
	return &fakeLeaguesRepo{
		leagues: make(map[uuid.UUID]*models.League),
		teams:   make(map[uuid.UUID][]models.FantasyTeam),
	}
}

func (f *fakeLeaguesRepo) addLeague(commissionerID uuid.UUID, maxTeams int) *models.League {
	league := &models.League{
		ID:             uuid.New(),
		Name:           "Test League",
		CommissionerID: commissionerID,
		LeagueType:     models.LeagueTypeStandard,
		ScoringType:    models.ScoringTypeHeadToHead,
		MaxTeams:       maxTeams,
		IsPublic:       true,
		SeasonYear:     2024,
		IsActive:       true,
	}
	f.leagues[league.ID] = league
	return league
}

func (f *fakeLeaguesRepo) detail(league *models.League) *LeagueDetail {
	count := len(f.teams[league.ID])
	return &LeagueDetail{
		League:           *league,
		CurrentTeamCount: count,
		SpotsAvailable:   league.MaxTeams - count,
	}
}

func (f *fakeLeaguesRepo) ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]LeagueDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []LeagueDetail
	for _, league := range f.leagues {
		if filter.IsPublic != nil && league.IsPublic != *filter.IsPublic {
			continue
		}
		if filter.LeagueType != nil && league.LeagueType != *filter.LeagueType {
			continue
		}
		detail := f.detail(league)
		if filter.HasSpots && detail.SpotsAvailable < 1 {
			continue
		}
		out = append(out, *detail)
	}
	return out, nil
}

func (f *fakeLeaguesRepo) GetLeague(ctx context.Context, id uuid.UUID) (*LeagueDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	league, ok := f.leagues[id]
	if !ok {
		return nil, ErrNotFound
	}
	return f.detail(league), nil
}

func (f *fakeLeaguesRepo) CreateLeague(ctx context.Context, commissionerID uuid.UUID, req CreateLeagueRequest) (*LeagueDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	league := &models.League{
		ID:             uuid.New(),
		Name:           req.Name,
		CommissionerID: commissionerID,
		LeagueType:     req.LeagueType,
		ScoringType:    req.ScoringType,
		MaxTeams:       req.MaxTeams,
		IsPublic:       isPublic,
		EntryFee:       req.EntryFee,
		PrizePool:      req.PrizePool,
		DraftDate:      req.DraftDate,
		SeasonYear:     req.SeasonYear,
		IsActive:       true,
	}
	f.leagues[league.ID] = league
	return f.detail(league), nil
}

func (f *fakeLeaguesRepo) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*LeagueDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	league, ok := f.leagues[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		league.Name = *req.Name
	}
	if req.MaxTeams != nil {
		league.MaxTeams = *req.MaxTeams
	}
	return f.detail(league), nil
}

func (f *fakeLeaguesRepo) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.leagues[id]; !ok {
		return ErrNotFound
	}
	delete(f.leagues, id)
	return nil
}

func (f *fakeLeaguesRepo) JoinLeague(ctx context.Context, leagueID, ownerID uuid.UUID, teamName string) (*models.FantasyTeam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.joinFailures > 0 {
		f.joinFailures--
		return nil, &pgconn.PgError{Code: "40001"}
	}

	league, ok := f.leagues[leagueID]
	if !ok {
		return nil, ErrNotFound
	}
	for _, team := range f.teams[leagueID] {
		if team.OwnerID == ownerID {
			return nil, ErrAlreadyMember
		}
	}
	if len(f.teams[leagueID]) >= league.MaxTeams {
		return nil, ErrLeagueFull
	}

	team := models.FantasyTeam{
		ID:        uuid.New(),
		Name:      teamName,
		OwnerID:   ownerID,
		LeagueID:  leagueID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.teams[leagueID] = append(f.teams[leagueID], team)
	return &team, nil
}

// fakeUserDirectory resolves user IDs for default team naming.
type fakeUserDirectory struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserDirectory) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (f *fakeUserDirectory) add(username string) uuid.UUID {
	user := &models.User{ID: uuid.New(), Username: username, IsActive: true}
	f.users[user.ID] = user
	return user.ID
}

func newTestApp() (*App, *fakeLeaguesRepo, *fakeUserDirectory) {
	repo := newFakeLeaguesRepo()
	directory := &fakeUserDirectory{users: make(map[uuid.UUID]*models.User)}
	return NewApp(repo, directory, events.NoopPublisher{}), repo, directory
}

func TestCreateLeague_Defaults(t *testing.T) {
	app, _, directory := newTestApp()
	commissioner := directory.add("alice")

	league, err := app.CreateLeague(context.Background(), commissioner, CreateLeagueRequest{Name: "My League"})
	require.NoError(t, err)

	assert.Equal(t, models.LeagueTypeStandard, league.LeagueType)
	assert.Equal(t, models.ScoringTypeHeadToHead, league.ScoringType)
	assert.Equal(t, 12, league.MaxTeams)
	assert.Equal(t, 2024, league.SeasonYear)
	assert.True(t, league.IsPublic)
	assert.Equal(t, commissioner, league.CommissionerID)
	assert.Equal(t, 12, league.SpotsAvailable)
}

func TestCreateLeague_Validation(t *testing.T) {
	app, _, directory := newTestApp()
	commissioner := directory.add("alice")
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateLeagueRequest
	}{
		{"missing name", CreateLeagueRequest{}},
		{"bad league type", CreateLeagueRequest{Name: "x", LeagueType: "superflex"}},
		{"bad scoring type", CreateLeagueRequest{Name: "x", ScoringType: "elo"}},
		{"negative max teams", CreateLeagueRequest{Name: "x", MaxTeams: -2}},
		{"negative entry fee", CreateLeagueRequest{Name: "x", EntryFee: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreateLeague(ctx, commissioner, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateLeague_CommissionerOnly(t *testing.T) {
	app, repo, directory := newTestApp()
	commissioner := directory.add("alice")
	outsider := directory.add("bob")
	league := repo.addLeague(commissioner, 10)
	ctx := context.Background()

	name := "Renamed"
	_, err := app.UpdateLeague(ctx, outsider, league.ID, UpdateLeagueRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotCommissioner)

	updated, err := app.UpdateLeague(ctx, commissioner, league.ID, UpdateLeagueRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	assert.ErrorIs(t, app.DeleteLeague(ctx, outsider, league.ID), ErrNotCommissioner)
	assert.NoError(t, app.DeleteLeague(ctx, commissioner, league.ID))
}

func TestJoinLeague(t *testing.T) {
	app, repo, directory := newTestApp()
	commissioner := directory.add("alice")
	league := repo.addLeague(commissioner, 2)
	ctx := context.Background()

	bob := directory.add("bob")
	team, err := app.JoinLeague(ctx, league.ID, bob, "Bob's Bombers")
	require.NoError(t, err)
	assert.Equal(t, "Bob's Bombers", team.Name)
	assert.Equal(t, bob, team.OwnerID)

	// Rejoining is rejected regardless of remaining capacity.
	_, err = app.JoinLeague(ctx, league.ID, bob, "Second Team")
	assert.ErrorIs(t, err, ErrAlreadyMember)

	// The last spot can still be taken.
	carol := directory.add("carol")
	_, err = app.JoinLeague(ctx, league.ID, carol, "")
	require.NoError(t, err)

	// Capacity reached.
	dave := directory.add("dave")
	_, err = app.JoinLeague(ctx, league.ID, dave, "Latecomers")
	assert.ErrorIs(t, err, ErrLeagueFull)
}

func TestJoinLeague_DefaultTeamName(t *testing.T) {
	app, repo, directory := newTestApp()
	league := repo.addLeague(directory.add("alice"), 10)
	bob := directory.add("bob")

	team, err := app.JoinLeague(context.Background(), league.ID, bob, "")
	require.NoError(t, err)
	assert.Equal(t, "bob's Team", team.Name)
}

func TestJoinLeague_UnknownLeague(t *testing.T) {
	app, _, directory := newTestApp()
	bob := directory.add("bob")

	_, err := app.JoinLeague(context.Background(), uuid.New(), bob, "Bombers")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinLeague_RetriesSerializationConflict(t *testing.T) {
	app, repo, directory := newTestApp()
	league := repo.addLeague(directory.add("alice"), 10)
	bob := directory.add("bob")
	ctx := context.Background()

	// One conflict is absorbed by the retry.
	repo.joinFailures = 1
	team, err := app.JoinLeague(ctx, league.ID, bob, "Bombers")
	require.NoError(t, err)
	assert.Equal(t, "Bombers", team.Name)

	// Two conflicts exhaust the retry budget.
	carol := directory.add("carol")
	repo.joinFailures = 2
	_, err = app.JoinLeague(ctx, league.ID, carol, "Crushers")
	assert.ErrorIs(t, err, ErrJoinConflict)
}

func TestJoinLeague_ConcurrentNeverOverfills(t *testing.T) {
	const spots = 3
	const joiners = 20

	app, repo, directory := newTestApp()
	league := repo.addLeague(directory.add("alice"), spots)

	var wg sync.WaitGroup
	errs := make(chan error, joiners)
	for i := 0; i < joiners; i++ {
		userID := directory.add(uuid.NewString())
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.JoinLeague(context.Background(), league.ID, userID, "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var joined, full int
	for err := range errs {
		switch {
		case err == nil:
			joined++
		default:
			require.ErrorIs(t, err, ErrLeagueFull)
			full++
		}
	}
	assert.Equal(t, spots, joined)
	assert.Equal(t, joiners-spots, full)
	assert.Len(t, repo.teams[league.ID], spots)
}
