package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// defaultCrimeTypes is the fixed catalog seeded on first run.
var defaultCrimeTypes = []*models.CrimeType{
	{Name: "theft", Severity: models.PriorityMedium, Description: "Theft and burglary"},
	{Name: "assault", Severity: models.PriorityHigh, Description: "Physical assault"},
	{Name: "vandalism", Severity: models.PriorityLow, Description: "Property damage"},
	{Name: "drug_related", Severity: models.PriorityMedium, Description: "Drug-related crimes"},
	{Name: "fraud", Severity: models.PriorityMedium, Description: "Financial fraud"},
	{Name: "domestic_violence", Severity: models.PriorityUrgent, Description: "Domestic violence"},
	{Name: "other", Severity: models.PriorityMedium, Description: "Other crimes"},
}

// Bootstrapper seeds the default admin account and the crime-type catalog
// after migrations have run.
type Bootstrapper struct {
	users  UserRepository
	types  CrimeTypeRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewBootstrapper(users UserRepository, types CrimeTypeRepository, logger *logrus.Logger, cfg *config.Config) *Bootstrapper {
	return &Bootstrapper{
		users:  users,
		types:  types,
		logger: logger,
		cfg:    cfg,
	}
}

// Run is idempotent: existing data is left untouched.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.ensureDefaultAdmin(ctx); err != nil {
		return err
	}
	return b.seedCrimeTypes(ctx)
}

func (b *Bootstrapper) ensureDefaultAdmin(ctx context.Context) error {
	_, err := b.users.GetByUsername(ctx, b.cfg.DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("bootstrap: could not check default admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(b.cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap: could not hash default admin password: %w", err)
	}

	admin := &models.User{
		Username:     b.cfg.DefaultAdminUsername,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := b.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("bootstrap: could not create default admin: %w", err)
	}

	b.logger.WithField("username", admin.Username).Info("Default admin account created")
	return nil
}

func (b *Bootstrapper) seedCrimeTypes(ctx context.Context) error {
	count, err := b.types.Count(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: could not count crime types: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := b.types.CreateBatch(ctx, defaultCrimeTypes); err != nil {
		return fmt.Errorf("bootstrap: could not seed crime types: %w", err)
	}

	b.logger.WithField("count", len(defaultCrimeTypes)).Info("Default crime types created")
	return nil
}
