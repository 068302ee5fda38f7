package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/shenikar/crime_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}

	return NewAuthService(usersMock, logger, cfg), usersMock
}

func newAdminUser(t *testing.T, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
}

func TestLogin_Success(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()
	admin := newAdminUser(t, "admin123")

	usersMock.EXPECT().GetByUsername(ctx, "admin").Return(admin, nil).Times(1)

	token, user, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, admin.ID, user.ID)

	claims, err := svc.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()
	admin := newAdminUser(t, "admin123")

	usersMock.EXPECT().GetByUsername(ctx, "admin").Return(admin, nil).Times(1)

	_, _, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()

	usersMock.EXPECT().
		GetByUsername(ctx, "ghost").
		Return(nil, fmt.Errorf("user ghost: %w", ErrUserNotFound)).
		Times(1)

	_, _, err := svc.Login(ctx, "ghost", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NonAdminAccount(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()
	user := newAdminUser(t, "admin123")
	user.IsAdmin = false

	usersMock.EXPECT().GetByUsername(ctx, "admin").Return(user, nil).Times(1)

	_, _, err := svc.Login(ctx, "admin", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepositoryError(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()

	usersMock.EXPECT().
		GetByUsername(ctx, "admin").
		Return(nil, fmt.Errorf("connection refused")).
		Times(1)

	_, _, err := svc.Login(ctx, "admin", "admin123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateSession_Garbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ValidateSession("not-a-token")
	assert.Error(t, err)
}

func TestValidateSession_WrongSecret(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()
	admin := newAdminUser(t, "admin123")

	usersMock.EXPECT().GetByUsername(ctx, "admin").Return(admin, nil).Times(1)

	token, _, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	other, _ := newTestAuthService(t)
	otherImpl := other.(*authService)
	otherImpl.cfg = &config.Config{SessionSecret: "different-secret", SessionTTL: time.Hour}

	_, err = other.ValidateSession(token)
	assert.Error(t, err)
}
