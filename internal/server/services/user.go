// Package services contains server-side business logic. This file implements
// UserService, which handles registration (profile intake, password hashing,
// nutrition target computation) and sign-in (credential check plus JWT
// issuance).
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mealsnap/mealsnap/internal/common"
	"github.com/mealsnap/mealsnap/internal/dbx"
	"github.com/mealsnap/mealsnap/internal/server/auth"
	"github.com/mealsnap/mealsnap/internal/server/config"
	"github.com/mealsnap/mealsnap/internal/server/models"
	"github.com/mealsnap/mealsnap/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - SignUp: create users with computed daily targets
// - SignIn: verify credentials and mint an access token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// SignUpParams carries the validated sign-up payload into the service.
type SignUpParams struct {
	Name          string
	Email         string
	Password      string
	Goal          string
	Gender        string
	BirthDate     time.Time
	Height        float64
	Weight        float64
	ActivityLevel int
}

// SignUp registers a new account. The email must be unused
// (common.ErrorAlreadyExists otherwise). The password is stored as a bcrypt
// hash and the user's daily targets are computed from the profile before
// the row is written. The email check and the insert run in one
// transaction; a concurrent registration that slips past the check is
// caught by the users.email unique constraint and reported as the same
// common.ErrorAlreadyExists.
func (s *UserService) SignUp(ctx context.Context, params *SignUpParams) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Name:          params.Name,
		Email:         params.Email,
		PasswordHash:  string(hash),
		Goal:          params.Goal,
		Gender:        params.Gender,
		BirthDate:     params.BirthDate,
		Height:        params.Height,
		Weight:        params.Weight,
		ActivityLevel: params.ActivityLevel,
	}
	CalculateTargets(user, time.Now())

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByEmail(ctx, params.Email)
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking email: %w", err)
		}

		user, err = repo.Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn verifies the email/password pair and returns a signed access
// token. An unknown email and a wrong password both yield
// common.ErrorUnauthorized, so callers cannot probe for registered emails.
func (s *UserService) SignIn(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
