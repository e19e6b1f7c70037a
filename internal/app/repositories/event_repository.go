package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
)

// EventRepository handles database operations for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, date, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Date, event.Description, event.ImageURL,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetAll lists events by date, newest first.
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT id, title, date, description, image_url, created_at
		FROM events
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// Upcoming lists events dated today or later, soonest first.
func (r *EventRepository) Upcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	query := `
		SELECT id, title, date, description, image_url, created_at
		FROM events
		WHERE date >= CURRENT_DATE
		ORDER BY date ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing upcoming events: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *EventRepository) collect(rows pgx.Rows) ([]*models.Event, error) {
	events := []*models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Description, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// GetByID retrieves an event by primary key.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, title, date, description, image_url, created_at
		FROM events
		WHERE id = $1
	`

	var e models.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Date, &e.Description, &e.ImageURL, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return &e, nil
}

// Update overwrites an event's fields, image URL included.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE events SET title = $1, date = $2, description = $3, image_url = $4 WHERE id = $5`,
		event.Title, event.Date, event.Description, event.ImageURL, event.ID)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Count returns the total number of events.
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}

// CountCreatedBetween counts events created in [from, to).
func (r *EventRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM events WHERE created_at >= $1 AND created_at < $2`,
		from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events by month: %w", err)
	}
	return count, nil
}
