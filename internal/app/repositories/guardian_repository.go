package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
)

// GuardianRepository handles database operations for guardian accounts.
type GuardianRepository struct {
	db *pgxpool.Pool
}

// NewGuardianRepository creates a new guardian repository
func NewGuardianRepository(db *pgxpool.Pool) *GuardianRepository {
	return &GuardianRepository{
		db: db,
	}
}

// Create inserts a new guardian account.
func (r *GuardianRepository) Create(ctx context.Context, guardian *models.Guardian) error {
	query := `
		INSERT INTO guardians (full_name, email, password_hash, phone, cnic)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		guardian.FullName,
		guardian.Email,
		guardian.PasswordHash,
		guardian.Phone,
		guardian.CNIC,
	).Scan(&guardian.ID, &guardian.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating guardian: %w", err)
	}

	return nil
}

// GetByEmail retrieves a guardian by email.
func (r *GuardianRepository) GetByEmail(ctx context.Context, email string) (*models.Guardian, error) {
	query := `
		SELECT id, full_name, email, password_hash, phone, cnic, created_at
		FROM guardians
		WHERE email = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// GetByID retrieves a guardian by primary key.
func (r *GuardianRepository) GetByID(ctx context.Context, id int64) (*models.Guardian, error) {
	query := `
		SELECT id, full_name, email, password_hash, phone, cnic, created_at
		FROM guardians
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *GuardianRepository) scanOne(row pgx.Row) (*models.Guardian, error) {
	var guardian models.Guardian
	err := row.Scan(
		&guardian.ID,
		&guardian.FullName,
		&guardian.Email,
		&guardian.PasswordHash,
		&guardian.Phone,
		&guardian.CNIC,
		&guardian.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGuardianNotFound
		}
		return nil, fmt.Errorf("error retrieving guardian: %w", err)
	}
	return &guardian, nil
}

// ExistsByEmail checks whether an email is already registered.
func (r *GuardianRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM guardians WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking guardian email: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates a guardian's editable profile fields.
func (r *GuardianRepository) UpdateProfile(ctx context.Context, guardian *models.Guardian) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE guardians SET full_name = $1, phone = $2, cnic = $3 WHERE id = $4`,
		guardian.FullName, guardian.Phone, guardian.CNIC, guardian.ID)
	if err != nil {
		return fmt.Errorf("error updating guardian profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGuardianNotFound
	}

	return nil
}

// UpdatePassword overwrites a guardian's password hash.
func (r *GuardianRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE guardians SET password_hash = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return fmt.Errorf("error updating guardian password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGuardianNotFound
	}

	return nil
}
