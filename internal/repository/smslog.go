package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_reporting_system/internal/models"
)

// SMSLogRepository persists notification attempts. The log is append-only:
// each attempt is written once with its final status.
type SMSLogRepository struct {
	db *pgxpool.Pool
}

func NewSMSLogRepository(db *pgxpool.Pool) *SMSLogRepository {
	return &SMSLogRepository{db: db}
}

// Create appends an SMS log row.
func (r *SMSLogRepository) Create(ctx context.Context, log *models.SMSLog) error {
	query := `
		INSERT INTO sms_logs (phone_number, message, status, crime_report_id, provider_sid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sent_at;
	`
	err := r.db.QueryRow(ctx, query,
		log.PhoneNumber,
		log.Message,
		log.Status,
		log.CrimeReportID,
		log.ProviderSID,
	).Scan(&log.ID, &log.SentAt)
	if err != nil {
		return fmt.Errorf("failed to create sms log: %w", err)
	}
	return nil
}

// ListByReport returns the notification history of a report, newest first.
func (r *SMSLogRepository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.SMSLog, error) {
	query := `
		SELECT id, phone_number, message, status, crime_report_id, sent_at, provider_sid
		FROM sms_logs
		WHERE crime_report_id = $1
		ORDER BY sent_at DESC;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sms logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.SMSLog, 0)
	for rows.Next() {
		log := &models.SMSLog{}
		err := rows.Scan(
			&log.ID,
			&log.PhoneNumber,
			&log.Message,
			&log.Status,
			&log.CrimeReportID,
			&log.SentAt,
			&log.ProviderSID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sms log row: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during sms log iteration: %w", err)
	}
	return logs, nil
}
