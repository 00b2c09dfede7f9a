package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefrontlabs/storefront-backend/pkg/auth"
	"github.com/storefrontlabs/storefront-backend/pkg/auth/session"
	"github.com/storefrontlabs/storefront-backend/pkg/config"
	"github.com/storefrontlabs/storefront-backend/pkg/db"
	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefrontlabs/storefront-backend/pkg/errors"
	"github.com/storefrontlabs/storefront-backend/pkg/security"
)

// SessionStore is the server-side session surface the service depends on.
type SessionStore interface {
	Create(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
	HasSession(ctx context.Context, accessID string) (bool, error)
}

// RegisterInput captures a new API user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries the credentials for a token grant.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult bundles the authenticated user with their bearer token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type Service struct {
	repo     *Repository
	sessions SessionStore
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	now      func() time.Time
}

func NewService(repo *Repository, sessions SessionStore, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("auth repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	return &Service{
		repo:     repo,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		now:      time.Now,
	}, nil
}

// Register creates the user and immediately grants a token, so signup flows
// do not need a second round trip through Login.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	hash, err := security.HashPassword(input.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	return s.grantToken(ctx, user)
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.repo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "account disabled")
	}

	return s.grantToken(ctx, user)
}

// Logout revokes the server-side session behind the token's access id.
func (s *Service) Logout(ctx context.Context, accessID string) error {
	if accessID == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return user, nil
}

// Authenticate validates a bearer token and its backing session. Middleware
// calls this on every protected request.
func (s *Service) Authenticate(ctx context.Context, token string) (*auth.AccessTokenClaims, error) {
	claims, err := auth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token")
	}

	active, err := s.sessions.HasSession(ctx, claims.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check session")
	}
	if !active {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired")
	}
	return claims, nil
}

func (s *Service) grantToken(ctx context.Context, user *models.User) (*AuthResult, error) {
	accessID := session.NewAccessID()
	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}
	if err := s.sessions.Create(ctx, accessID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}
	return &AuthResult{User: user, Token: token}, nil
}
