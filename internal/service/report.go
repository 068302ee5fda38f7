package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/shenikar/crime_reporting_system/internal/sms"
	"github.com/sirupsen/logrus"
)

// PageSize is the fixed page size for the dashboard and the public feed.
const PageSize = 10

// SMS texts sent on intake and on every status transition.
const (
	msgSubmitted     = "Crime alert submitted successfully. Report ID: %s. We will notify you once verified."
	msgVerified      = "Your crime report (ID: %s) has been verified by authorities. Thank you for helping keep our community safe."
	msgInvestigating = "Your crime report (ID: %s) has been verified and is under investigation. We will keep you updated."
	msgRejected      = "Your crime report (ID: %s) has been rejected. Please ensure all information is accurate. False reports may result in legal action."
)

const investigationNote = "Investigation started"

// publicStatuses are the only statuses exposed through the public read paths.
var publicStatuses = []string{models.StatusVerified, models.StatusInvestigating}

// ReportRepository defines the persistence contract for crime reports.
type ReportRepository interface {
	Create(ctx context.Context, report *models.CrimeReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CrimeReport, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, status string, verifiedBy uuid.UUID, verifiedAt time.Time, adminNotes string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByStatuses(ctx context.Context, statuses []string, page, pageSize int) ([]*models.CrimeReport, error)
	ListAllByStatuses(ctx context.Context, statuses []string) ([]*models.CrimeReport, error)
	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.CrimeReport, error)
	SetReportCache(ctx context.Context, report *models.CrimeReport) error
	InvalidateReportCache(ctx context.Context, id uuid.UUID) error
}

// SMSLogRepository reads the notification history of a report.
type SMSLogRepository interface {
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.SMSLog, error)
}

// CrimeTypeRepository defines the persistence contract for the crime-type catalog.
type CrimeTypeRepository interface {
	List(ctx context.Context) ([]*models.CrimeType, error)
	Count(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, types []*models.CrimeType) error
}

// NotificationSender delivers an SMS best-effort. The bool result is
// informational only; callers never branch on it.
type NotificationSender interface {
	Send(ctx context.Context, phoneNumber, message string, reportID *uuid.UUID) bool
}

// ReportService defines the business logic for the report lifecycle.
type ReportService interface {
	SubmitReport(ctx context.Context, report *models.CrimeReport) error
	GetReportDetail(ctx context.Context, id uuid.UUID) (*models.CrimeReport, []*models.SMSLog, error)
	VerifyReport(ctx context.Context, id, adminID uuid.UUID, investigation bool) (*models.CrimeReport, error)
	RejectReport(ctx context.Context, id uuid.UUID) (*models.CrimeReport, error)
	ListByStatus(ctx context.Context, status string, page int) ([]*models.CrimeReport, error)
	PublicFeed(ctx context.Context, page int) ([]*models.CrimeReport, error)
	PublicReports(ctx context.Context) ([]*models.CrimeReport, error)
	ListCrimeTypes(ctx context.Context) ([]*models.CrimeType, error)
}

type reportService struct {
	repo    ReportRepository
	smsLogs SMSLogRepository
	types   CrimeTypeRepository
	sender  NotificationSender
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewReportService(repo ReportRepository, smsLogs SMSLogRepository, types CrimeTypeRepository, sender NotificationSender, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		repo:    repo,
		smsLogs: smsLogs,
		types:   types,
		sender:  sender,
		logger:  logger,
		cfg:     cfg,
	}
}

// SubmitReport persists a new anonymous report and fires the confirmation SMS.
func (s *reportService) SubmitReport(ctx context.Context, report *models.CrimeReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "SubmitReport",
		"title":   report.Title,
	})
	log.Info("Attempting to submit a new crime report")

	// The intake form is deliberately anonymous: the reporter name is fixed
	// and the identifying fields are stored empty.
	report.IsAnonymous = true
	report.ReporterName = models.AnonymousReporter
	report.ReporterEmail = ""
	report.Landmark = ""
	report.Witnesses = ""
	report.Evidence = ""
	report.ReporterPhone = sms.NormalizePhone(report.ReporterPhone, s.cfg.SMSCountryCode)
	report.Priority = models.PriorityMedium
	report.Status = models.StatusPending
	report.IncidentDate = time.Now().UTC()

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create crime report in repository")
		return fmt.Errorf("service: could not submit crime report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Crime report submitted successfully")

	// Fire-and-forget: a failed confirmation never fails the submission.
	s.sender.Send(ctx, report.ReporterPhone, fmt.Sprintf(msgSubmitted, report.ID), &report.ID)
	return nil
}

// GetReportDetail returns one report plus its notification history, newest first.
func (s *reportService) GetReportDetail(ctx context.Context, id uuid.UUID) (*models.CrimeReport, []*models.SMSLog, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReportDetail",
		"report_id": id,
	})

	report, err := s.getReport(ctx, id, log)
	if err != nil {
		return nil, nil, err
	}

	logs, err := s.smsLogs.ListByReport(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list sms logs from repository")
		return nil, nil, fmt.Errorf("service: could not list sms logs: %w", err)
	}

	log.Info("Crime report detail fetched successfully")
	return report, logs, nil
}

// getReport reads a report through the cache.
func (s *reportService) getReport(ctx context.Context, id uuid.UUID, log *logrus.Entry) (*models.CrimeReport, error) {
	cached, err := s.repo.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read crime report from cache")
	}
	if cached != nil {
		return cached, nil
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get crime report from repository")
		return nil, fmt.Errorf("service: could not get crime report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache crime report")
	}
	return report, nil
}

// VerifyReport applies the verify (or verify+investigate) transition and
// notifies the reporter. Transitions are deliberately unguarded: verifying an
// already verified or rejected report overwrites its status, matching the
// permissive lifecycle this service models. An overwrite of a non-pending
// report is logged so the choice stays visible.
func (s *reportService) VerifyReport(ctx context.Context, id, adminID uuid.UUID, investigation bool) (*models.CrimeReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "report",
		"method":        "VerifyReport",
		"report_id":     id,
		"admin_id":      adminID,
		"investigation": investigation,
	})
	log.Info("Attempting to verify crime report")

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to verify a non-existent crime report")
		return nil, fmt.Errorf("service: could not get crime report for verification: %w", err)
	}

	if report.Status != models.StatusPending {
		log.WithField("current_status", report.Status).Warn("Verifying a non-pending report, prior status is overwritten")
	}

	now := time.Now().UTC()
	status := models.StatusVerified
	notes := report.AdminNotes
	message := msgVerified
	if investigation {
		status = models.StatusInvestigating
		notes = investigationNote
		message = msgInvestigating
	}

	if err := s.repo.UpdateVerification(ctx, id, status, adminID, now, notes); err != nil {
		log.WithError(err).Error("Failed to update crime report verification in repository")
		return nil, fmt.Errorf("service: could not verify crime report: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate crime report cache")
	}

	report.Status = status
	report.VerifiedAt = &now
	report.VerifiedBy = &adminID
	report.AdminNotes = notes

	s.sender.Send(ctx, report.ReporterPhone, fmt.Sprintf(message, report.ID), &report.ID)

	log.Info("Crime report verified successfully")
	return report, nil
}

// RejectReport sets the status to rejected regardless of the current state
// and sends the warning notification.
func (s *reportService) RejectReport(ctx context.Context, id uuid.UUID) (*models.CrimeReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "RejectReport",
		"report_id": id,
	})
	log.Info("Attempting to reject crime report")

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to reject a non-existent crime report")
		return nil, fmt.Errorf("service: could not get crime report for rejection: %w", err)
	}

	if err := s.repo.UpdateStatus(ctx, id, models.StatusRejected); err != nil {
		log.WithError(err).Error("Failed to update crime report status in repository")
		return nil, fmt.Errorf("service: could not reject crime report: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate crime report cache")
	}

	report.Status = models.StatusRejected

	s.sender.Send(ctx, report.ReporterPhone, fmt.Sprintf(msgRejected, report.ID), &report.ID)

	log.Info("Crime report rejected")
	return report, nil
}

// ListByStatus returns one dashboard page of reports with the given status,
// newest first. An empty status defaults to pending.
func (s *reportService) ListByStatus(ctx context.Context, status string, page int) ([]*models.CrimeReport, error) {
	if page < 1 {
		page = 1
	}
	if status == "" {
		status = models.StatusPending
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListByStatus",
		"status":  status,
		"page":    page,
	})

	reports, err := s.repo.ListByStatuses(ctx, []string{status}, page, PageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list crime reports from repository")
		return nil, fmt.Errorf("service: could not list crime reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Crime reports listed successfully")
	return reports, nil
}

// PublicFeed returns one page of verified/investigating reports, newest first.
func (s *reportService) PublicFeed(ctx context.Context, page int) ([]*models.CrimeReport, error) {
	if page < 1 {
		page = 1
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "PublicFeed",
		"page":    page,
	})

	reports, err := s.repo.ListByStatuses(ctx, publicStatuses, page, PageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list feed reports from repository")
		return nil, fmt.Errorf("service: could not list feed reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Feed reports listed successfully")
	return reports, nil
}

// PublicReports returns every verified/investigating report for the map API.
func (s *reportService) PublicReports(ctx context.Context) ([]*models.CrimeReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "PublicReports",
	})

	reports, err := s.repo.ListAllByStatuses(ctx, publicStatuses)
	if err != nil {
		log.WithError(err).Error("Failed to list public reports from repository")
		return nil, fmt.Errorf("service: could not list public reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Public reports listed successfully")
	return reports, nil
}

// ListCrimeTypes returns the seeded crime-type catalog.
func (s *reportService) ListCrimeTypes(ctx context.Context) ([]*models.CrimeType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list crime types from repository")
		return nil, fmt.Errorf("service: could not list crime types: %w", err)
	}
	return types, nil
}
