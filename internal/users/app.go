package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/internal/auth"
	"github.com/mcdev12/gridiron/internal/models"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, params createUserParams) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error)
}

// App handles account business logic
type App struct {
	repo UsersRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{repo: repo}
}

// Register creates a new account with validation and a hashed password.
func (a *App) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := a.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	// Pre-check for friendlier errors; the unique constraints still back
	// this up under concurrent registration.
	if existing, err := a.repo.GetUserByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, err := a.repo.GetUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, createUserParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Str("email", user.Email).Msg("registered user")
	return user, nil
}

// Login checks credentials and returns the account.
func (a *App) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := a.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return a.repo.GetUser(ctx, id)
}

// UpdateProfile applies a partial update of mutable preference fields.
func (a *App) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error) {
	if req.AIRiskTolerance != nil {
		switch *req.AIRiskTolerance {
		case models.RiskToleranceConservative, models.RiskToleranceBalanced, models.RiskToleranceAggressive:
		default:
			return nil, fmt.Errorf("%w: invalid ai_risk_tolerance: %s", ErrValidation, *req.AIRiskTolerance)
		}
	}

	user, err := a.repo.UpdateProfile(ctx, id, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Msg("updated profile")
	return user, nil
}

func (a *App) validateRegisterRequest(req RegisterRequest) error {
	if req.Username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		return fmt.Errorf("%w: email format is invalid", ErrValidation)
	}
	if len(req.Password) < 4 {
		return fmt.Errorf("%w: password must be at least 4 characters", ErrValidation)
	}
	if req.Password != req.PasswordConfirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	return nil
}
