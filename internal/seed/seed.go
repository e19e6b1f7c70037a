package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/repositories"
	"github.com/nasheeman/portal/internal/config"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultAdmin creates the configured back-office account when no admin
// with that email exists yet. Skipped when admin credentials are not set.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Info().Msg("No default admin configured, skipping seed")
		return nil
	}

	adminRepo := repositories.NewAdminRepository(dbPool)

	_, err := adminRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	admin := &models.Admin{
		Name:         name,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin created")
	return nil
}
