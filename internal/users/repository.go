package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/sqlutil"
)

// Repository implements user data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new users repository
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, username, email, password_hash, favorite_team, theme_preference,
	dark_mode, ai_risk_tolerance, ai_prioritize_matchups, ai_consider_injuries,
	is_active, created_at, updated_at`

// CreateUser inserts a new user row with preference defaults.
func (r *Repository) CreateUser(ctx context.Context, params createUserParams) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		uuid.New(), params.Username, params.Email, params.PasswordHash,
	)
	user, err := scanUser(row)
	if err != nil {
		if sqlutil.IsUniqueViolation(err, "users_username_key") {
			return nil, ErrUsernameTaken
		}
		if sqlutil.IsUniqueViolation(err, "users_email_key") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return wrapNotFound(scanUser(row))
}

// GetUserByUsername retrieves a user by username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return wrapNotFound(scanUser(row))
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return wrapNotFound(scanUser(row))
}

// UpdateProfile applies a partial update of the mutable preference fields.
func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET
			favorite_team          = COALESCE($2, favorite_team),
			theme_preference       = COALESCE($3, theme_preference),
			dark_mode              = COALESCE($4, dark_mode),
			ai_risk_tolerance      = COALESCE($5, ai_risk_tolerance),
			ai_prioritize_matchups = COALESCE($6, ai_prioritize_matchups),
			ai_consider_injuries   = COALESCE($7, ai_consider_injuries),
			updated_at             = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id,
		sqlutil.ToSqlString(req.FavoriteTeam),
		sqlutil.ToSqlString(req.ThemePreference),
		toSqlBool(req.DarkMode),
		toSqlRiskTolerance(req.AIRiskTolerance),
		toSqlBool(req.AIPrioritizeMatchups),
		toSqlBool(req.AIConsiderInjuries),
	)
	return wrapNotFound(scanUser(row))
}

func toSqlBool(val *bool) sql.NullBool {
	if val == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *val, Valid: true}
}

func toSqlRiskTolerance(val *models.RiskTolerance) sql.NullString {
	if val == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: string(*val), Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var favoriteTeam sql.NullString
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &favoriteTeam,
		&u.ThemePreference, &u.DarkMode, &u.AIRiskTolerance,
		&u.AIPrioritizeMatchups, &u.AIConsiderInjuries,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.FavoriteTeam = sqlutil.FromSqlString(favoriteTeam)
	return &u, nil
}

func wrapNotFound(user *models.User, err error) (*models.User, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
