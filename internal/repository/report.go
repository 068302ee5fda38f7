package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/shenikar/crime_reporting_system/internal/service"
)

const reportColumns = `
			id,
			title,
			description,
			crime_type,
			incident_date,
			latitude,
			longitude,
			address,
			landmark,
			reporter_name,
			reporter_phone,
			reporter_email,
			is_anonymous,
			witnesses,
			evidence_description,
			priority,
			status,
			created_at,
			verified_at,
			verified_by,
			admin_notes`

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a new crime report.
func (r *ReportRepository) Create(ctx context.Context, report *models.CrimeReport) error {
	query := `
		INSERT INTO crime_reports (
			title, description, crime_type, incident_date, latitude, longitude,
			address, landmark, reporter_name, reporter_phone, reporter_email,
			is_anonymous, witnesses, evidence_description, priority, status, admin_notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Title,
		report.Description,
		report.CrimeType,
		report.IncidentDate,
		report.Latitude,
		report.Longitude,
		report.Address,
		report.Landmark,
		report.ReporterName,
		report.ReporterPhone,
		report.ReporterEmail,
		report.IsAnonymous,
		report.Witnesses,
		report.Evidence,
		report.Priority,
		report.Status,
		report.AdminNotes,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create crime report: %w", err)
	}
	return nil
}

// GetByID returns a crime report by its UUID.
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CrimeReport, error) {
	report := &models.CrimeReport{}
	query := `
		SELECT ` + reportColumns + `
		FROM crime_reports
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Title,
		&report.Description,
		&report.CrimeType,
		&report.IncidentDate,
		&report.Latitude,
		&report.Longitude,
		&report.Address,
		&report.Landmark,
		&report.ReporterName,
		&report.ReporterPhone,
		&report.ReporterEmail,
		&report.IsAnonymous,
		&report.Witnesses,
		&report.Evidence,
		&report.Priority,
		&report.Status,
		&report.CreatedAt,
		&report.VerifiedAt,
		&report.VerifiedBy,
		&report.AdminNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("crime report with id %s: %w", id, service.ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to get crime report by id: %w", err)
	}
	return report, nil
}

// UpdateVerification applies a verify/investigate transition. No guard on the
// current status: whatever state the report is in gets overwritten.
func (r *ReportRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status string, verifiedBy uuid.UUID, verifiedAt time.Time, adminNotes string) error {
	query := `
		UPDATE crime_reports SET
			status = $1,
			verified_at = $2,
			verified_by = $3,
			admin_notes = $4
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, verifiedAt, verifiedBy, adminNotes, id)
	if err != nil {
		return fmt.Errorf("failed to update crime report verification: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("crime report with id %s: %w", id, service.ErrReportNotFound)
	}
	return nil
}

// UpdateStatus sets the status unconditionally. Used by reject.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE crime_reports SET
			status = $1
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update crime report status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("crime report with id %s: %w", id, service.ErrReportNotFound)
	}
	return nil
}

// ListByStatuses returns reports matching any of the given statuses,
// newest first, with pagination. An out-of-range page yields an empty slice.
func (r *ReportRepository) ListByStatuses(ctx context.Context, statuses []string, page, pageSize int) ([]*models.CrimeReport, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + reportColumns + `
		FROM crime_reports
		WHERE status = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, statuses, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list crime reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// ListAllByStatuses returns every report matching the given statuses,
// newest first, without pagination. Backs the public JSON listing.
func (r *ReportRepository) ListAllByStatuses(ctx context.Context, statuses []string) ([]*models.CrimeReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM crime_reports
		WHERE status = ANY($1)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to list all crime reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

func scanReports(rows pgx.Rows) ([]*models.CrimeReport, error) {
	reports := make([]*models.CrimeReport, 0)
	for rows.Next() {
		report := &models.CrimeReport{}
		err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Description,
			&report.CrimeType,
			&report.IncidentDate,
			&report.Latitude,
			&report.Longitude,
			&report.Address,
			&report.Landmark,
			&report.ReporterName,
			&report.ReporterPhone,
			&report.ReporterEmail,
			&report.IsAnonymous,
			&report.Witnesses,
			&report.Evidence,
			&report.Priority,
			&report.Status,
			&report.CreatedAt,
			&report.VerifiedAt,
			&report.VerifiedBy,
			&report.AdminNotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crime report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during crime report iteration: %w", err)
	}
	return reports, nil
}

// GetReportFromCache tries to fetch a report from Redis.
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.CrimeReport, error) {
	key := fmt.Sprintf("crime_report:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get crime report from cache: %w", err)
	}

	report := &models.CrimeReport{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal crime report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache stores a report in Redis.
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.CrimeReport) error {
	key := fmt.Sprintf("crime_report:%s", report.ID.String())
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal crime report for cache: %w", err)
	}
	// Cache TTL of 5 minutes
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set crime report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache removes a report from the Redis cache.
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("crime_report:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate crime report cache: %w", err)
	}
	return nil
}
