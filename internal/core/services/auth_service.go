package services

import (
	"context"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/adapters/persistence/repositories"
	"gateway-discoveries/internal/core/domain"
	"gateway-discoveries/internal/pkg/jwt"
	"gateway-discoveries/internal/pkg/password"

	"github.com/sirupsen/logrus"
)

// LoginResult is the successful login payload: the signed token plus the
// identity claims echoed back to the client.
type LoginResult struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

// AuthService handles login and profile lookups
type AuthService struct {
	users    repositories.UserRepository
	secret   string
	tokenTTL time.Duration
	log      *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, secret string, tokenTTL time.Duration, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Login verifies credentials against the active-user store and issues a
// session token. Unknown email and wrong password both map to
// domain.ErrInvalidCredentials so the response never reveals which failed.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.users.RecordLogin(ctx, user.ID, time.Now()); err != nil {
		// Login still succeeds; the timestamp is informational.
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to record last login")
	}

	token, err := jwt.Generate(user.ID, user.Email, user.Role, user.Name, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user logged in")

	return &LoginResult{Token: token, User: user.ToPublic()}, nil
}

// GetProfile loads the stored profile for a user id taken from verified
// token claims.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToProfile(), nil
}
