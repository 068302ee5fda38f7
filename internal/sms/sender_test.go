package sms

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/shenikar/crime_reporting_system/internal/sms/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSender builds a Sender with mocked provider and log store.
func newTestSender(t *testing.T, simulate bool) (*Sender, *mocks.MockProviderClient, *mocks.MockLogStore) {
	ctrl := gomock.NewController(t)
	clientMock := mocks.NewMockProviderClient(ctrl)
	storeMock := mocks.NewMockLogStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		SimulateSMS:    simulate,
		SMSCountryCode: "91",
	}

	return NewSender(clientMock, storeMock, logger, cfg), clientMock, storeMock
}

func TestSend_SimulationMode(t *testing.T) {
	sender, _, storeMock := newTestSender(t, true)
	ctx := context.Background()
	reportID := uuid.New()

	storeMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(_ context.Context, log *models.SMSLog) {
			assert.Equal(t, "+919876543210", log.PhoneNumber)
			assert.Equal(t, "test message", log.Message)
			assert.Equal(t, models.SMSStatusSimulated, log.Status)
			require.NotNil(t, log.CrimeReportID)
			assert.Equal(t, reportID, *log.CrimeReportID)
		}).Return(nil).Times(1)

	ok := sender.Send(ctx, "9876543210", "test message", &reportID)
	assert.True(t, ok)
}

func TestSend_NilClientFallsBackToSimulation(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockLogStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	// Simulation disabled, but no provider is configured.
	cfg := &config.Config{
		SimulateSMS:    false,
		SMSCountryCode: "91",
	}
	sender := NewSender(nil, storeMock, logger, cfg)

	storeMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, log *models.SMSLog) {
			assert.Equal(t, models.SMSStatusSimulated, log.Status)
		}).Return(nil).Times(1)

	ok := sender.Send(context.Background(), "9876543210", "hello", nil)
	assert.True(t, ok)
}

func TestSend_ProviderSuccess(t *testing.T) {
	sender, clientMock, storeMock := newTestSender(t, false)
	ctx := context.Background()

	clientMock.EXPECT().
		SendMessage(ctx, "+919876543210", "verified").
		Return("SM123", nil).
		Times(1)

	storeMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(_ context.Context, log *models.SMSLog) {
			assert.Equal(t, models.SMSStatusSent, log.Status)
			assert.Equal(t, "SM123", log.ProviderSID)
		}).Return(nil).Times(1)

	ok := sender.Send(ctx, "98765 43210", "verified", nil)
	assert.True(t, ok)
}

func TestSend_ProviderFailure(t *testing.T) {
	sender, clientMock, storeMock := newTestSender(t, false)
	ctx := context.Background()

	clientMock.EXPECT().
		SendMessage(ctx, "+919876543210", "verified").
		Return("", errors.New("provider unavailable")).
		Times(1)

	storeMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(_ context.Context, log *models.SMSLog) {
			assert.Equal(t, models.SMSStatusFailed, log.Status)
			assert.Empty(t, log.ProviderSID)
		}).Return(nil).Times(1)

	ok := sender.Send(ctx, "9876543210", "verified", nil)
	assert.False(t, ok)
}

func TestSend_LogWriteFailureIsSwallowed(t *testing.T) {
	sender, _, storeMock := newTestSender(t, true)
	ctx := context.Background()

	storeMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(errors.New("db down")).
		Times(1)

	// The sender never raises past its own boundary.
	ok := sender.Send(ctx, "9876543210", "test", nil)
	assert.True(t, ok)
}
