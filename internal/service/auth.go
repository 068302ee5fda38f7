package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the persistence contract for admin accounts.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// SessionClaims is the payload of the signed session token.
type SessionClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// AuthService handles the admin login session.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	ValidateSession(token string) (*SessionClaims, error)
}

type authService struct {
	users  UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(users UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		logger: logger,
		cfg:    cfg,
	}
}

// Login checks the credentials against the stored hash. Only accounts with
// the admin flag may log in; everything else fails with the same error.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("Login attempt for unknown user")
			return "", nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return "", nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsAdmin {
		log.Warn("Login attempt by non-admin account")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		return "", nil, fmt.Errorf("service: could not issue session token: %w", err)
	}

	log.Info("Admin logged in successfully")
	return token, user, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}

// ValidateSession parses and verifies a session token.
func (s *authService) ValidateSession(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("service: invalid session token")
	}
	return claims, nil
}
