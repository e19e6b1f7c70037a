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

// PasswordResetTokenRepository handles database operations for single-use
// password reset tokens.
type PasswordResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewPasswordResetTokenRepository creates a new password reset token repository
func NewPasswordResetTokenRepository(db *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{
		db: db,
	}
}

// Create inserts a new token.
func (r *PasswordResetTokenRepository) Create(ctx context.Context, token *models.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (token, email, role, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		token.Token, token.Email, token.Role, token.ExpiresAt,
	).Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating password reset token: %w", err)
	}

	return nil
}

// GetByToken retrieves a token by its opaque value.
func (r *PasswordResetTokenRepository) GetByToken(ctx context.Context, value string) (*models.PasswordResetToken, error) {
	query := `
		SELECT id, token, email, role, expires_at, used_at, created_at
		FROM password_reset_tokens
		WHERE token = $1
	`

	var t models.PasswordResetToken
	err := r.db.QueryRow(ctx, query, value).Scan(
		&t.ID, &t.Token, &t.Email, &t.Role, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error retrieving password reset token: %w", err)
	}

	return &t, nil
}

// MarkUsed stamps the token consumed so it cannot be replayed.
func (r *PasswordResetTokenRepository) MarkUsed(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET used_at = CURRENT_TIMESTAMP WHERE id = $1 AND used_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("error marking password reset token used: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenUsed
	}

	return nil
}
