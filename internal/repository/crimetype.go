package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/shenikar/crime_reporting_system/internal/service"
)

type CrimeTypeRepository struct {
	db *pgxpool.Pool
}

func NewCrimeTypeRepository(db *pgxpool.Pool) service.CrimeTypeRepository {
	return &CrimeTypeRepository{db: db}
}

// List returns the whole crime-type catalog.
func (r *CrimeTypeRepository) List(ctx context.Context) ([]*models.CrimeType, error) {
	query := `
		SELECT id, name, severity, description
		FROM crime_types
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crime types: %w", err)
	}
	defer rows.Close()

	types := make([]*models.CrimeType, 0)
	for rows.Next() {
		ct := &models.CrimeType{}
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Severity, &ct.Description); err != nil {
			return nil, fmt.Errorf("failed to scan crime type row: %w", err)
		}
		types = append(types, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during crime type iteration: %w", err)
	}
	return types, nil
}

// Count returns the number of catalog entries.
func (r *CrimeTypeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM crime_types;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count crime types: %w", err)
	}
	return count, nil
}

// CreateBatch inserts catalog entries. Only used by the startup seed.
func (r *CrimeTypeRepository) CreateBatch(ctx context.Context, types []*models.CrimeType) error {
	query := `
		INSERT INTO crime_types (name, severity, description)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	for _, ct := range types {
		if err := r.db.QueryRow(ctx, query, ct.Name, ct.Severity, ct.Description).Scan(&ct.ID); err != nil {
			return fmt.Errorf("failed to create crime type %q: %w", ct.Name, err)
		}
	}
	return nil
}
