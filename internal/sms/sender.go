package sms

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// LogStore persists notification attempts.
type LogStore interface {
	Create(ctx context.Context, log *models.SMSLog) error
}

// ProviderClient sends a message through the external SMS provider and
// returns the provider message id on success.
type ProviderClient interface {
	SendMessage(ctx context.Context, to, body string) (string, error)
}

// Sender delivers (or simulates) SMS notifications and records every attempt.
// Failures never escape: the outcome is reduced to the returned bool and the
// status written to the log row.
type Sender struct {
	client ProviderClient
	logs   LogStore
	logger *logrus.Logger
	cfg    *config.Config
}

func NewSender(client ProviderClient, logs LogStore, logger *logrus.Logger, cfg *config.Config) *Sender {
	return &Sender{
		client: client,
		logs:   logs,
		logger: logger,
		cfg:    cfg,
	}
}

// Send normalizes the phone number, delivers or simulates the message and
// appends exactly one log row with the final status.
func (s *Sender) Send(ctx context.Context, phoneNumber, message string, reportID *uuid.UUID) bool {
	phoneNumber = NormalizePhone(phoneNumber, s.cfg.SMSCountryCode)

	log := s.logger.WithFields(logrus.Fields{
		"component": "sms",
		"phone":     phoneNumber,
	})

	smsLog := &models.SMSLog{
		PhoneNumber:   phoneNumber,
		Message:       message,
		CrimeReportID: reportID,
	}

	if s.cfg.SimulateSMS || s.client == nil {
		log.WithField("message", message).Info("SMS simulation: message not sent to provider")
		smsLog.Status = models.SMSStatusSimulated
		s.appendLog(ctx, smsLog)
		return true
	}

	sid, err := s.client.SendMessage(ctx, phoneNumber, message)
	if err != nil {
		log.WithError(err).Error("Failed to send SMS via provider")
		smsLog.Status = models.SMSStatusFailed
		s.appendLog(ctx, smsLog)
		return false
	}

	log.WithField("provider_sid", sid).Info("SMS sent successfully")
	smsLog.Status = models.SMSStatusSent
	smsLog.ProviderSID = sid
	s.appendLog(ctx, smsLog)
	return true
}

func (s *Sender) appendLog(ctx context.Context, smsLog *models.SMSLog) {
	if err := s.logs.Create(ctx, smsLog); err != nil {
		// The log write never fails the notification path.
		s.logger.WithError(err).Error("Failed to persist sms log")
	}
}
