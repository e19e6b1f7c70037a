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

// ContactRepository handles database operations for contact-form messages.
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

// Create inserts a new message. New messages start unread.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`

	err := r.db.QueryRow(ctx, query,
		contact.Name, contact.Email, contact.Subject, contact.Message,
	).Scan(&contact.ID, &contact.IsRead, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contact: %w", err)
	}

	return nil
}

// GetAll lists messages newest first.
func (r *ContactRepository) GetAll(ctx context.Context) ([]*models.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.IsRead, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning contact: %w", err)
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}

// GetByID retrieves a message by primary key.
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contacts
		WHERE id = $1
	`

	var c models.Contact
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.IsRead, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("error retrieving contact: %w", err)
	}

	return &c, nil
}

// SetRead marks a message read or unread. Setting the current state again is
// not an error.
func (r *ContactRepository) SetRead(ctx context.Context, id int64, read bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE contacts SET is_read = $1 WHERE id = $2`, read, id)
	if err != nil {
		return fmt.Errorf("error updating contact read state: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactNotFound
	}

	return nil
}

// UnreadCount returns the number of unread messages.
func (r *ContactRepository) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contacts WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread contacts: %w", err)
	}
	return count, nil
}

// Delete removes a message.
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting contact: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactNotFound
	}

	return nil
}

// Count returns the total number of messages.
func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting contacts: %w", err)
	}
	return count, nil
}
