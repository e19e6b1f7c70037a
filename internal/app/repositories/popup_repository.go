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

// PopupRepository handles database operations for site popups.
type PopupRepository struct {
	db *pgxpool.Pool
}

// NewPopupRepository creates a new popup repository
func NewPopupRepository(db *pgxpool.Pool) *PopupRepository {
	return &PopupRepository{
		db: db,
	}
}

// Create inserts a new popup.
func (r *PopupRepository) Create(ctx context.Context, popup *models.Popup) error {
	query := `
		INSERT INTO popups (title, message, image_url, show_until, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		popup.Title, popup.Message, popup.ImageURL, popup.ShowUntil, popup.Type,
	).Scan(&popup.ID)
	if err != nil {
		return fmt.Errorf("error creating popup: %w", err)
	}

	return nil
}

// GetAll lists every popup, newest first.
func (r *PopupRepository) GetAll(ctx context.Context) ([]*models.Popup, error) {
	query := `
		SELECT id, title, message, image_url, show_until, type
		FROM popups
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing popups: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// Active lists popups whose show_until date has not passed. Popups without an
// expiry are always active.
func (r *PopupRepository) Active(ctx context.Context) ([]*models.Popup, error) {
	query := `
		SELECT id, title, message, image_url, show_until, type
		FROM popups
		WHERE show_until IS NULL OR show_until >= CURRENT_DATE
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing active popups: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *PopupRepository) collect(rows pgx.Rows) ([]*models.Popup, error) {
	popups := []*models.Popup{}
	for rows.Next() {
		var p models.Popup
		if err := rows.Scan(&p.ID, &p.Title, &p.Message, &p.ImageURL, &p.ShowUntil, &p.Type); err != nil {
			return nil, fmt.Errorf("error scanning popup: %w", err)
		}
		popups = append(popups, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating popups: %w", err)
	}
	return popups, nil
}

// GetByID retrieves a popup by primary key.
func (r *PopupRepository) GetByID(ctx context.Context, id int64) (*models.Popup, error) {
	query := `
		SELECT id, title, message, image_url, show_until, type
		FROM popups
		WHERE id = $1
	`

	var p models.Popup
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Message, &p.ImageURL, &p.ShowUntil, &p.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPopupNotFound
		}
		return nil, fmt.Errorf("error retrieving popup: %w", err)
	}

	return &p, nil
}

// Update overwrites a popup's fields, image URL included.
func (r *PopupRepository) Update(ctx context.Context, popup *models.Popup) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE popups SET title = $1, message = $2, image_url = $3, show_until = $4, type = $5 WHERE id = $6`,
		popup.Title, popup.Message, popup.ImageURL, popup.ShowUntil, popup.Type, popup.ID)
	if err != nil {
		return fmt.Errorf("error updating popup: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPopupNotFound
	}

	return nil
}

// Delete removes a popup.
func (r *PopupRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM popups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting popup: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPopupNotFound
	}

	return nil
}
