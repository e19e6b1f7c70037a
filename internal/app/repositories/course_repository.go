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

// CourseRepository handles database operations for the course catalog.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, name, description, duration, level, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseID,
		course.Name,
		course.Description,
		course.Duration,
		course.Level,
		course.ImageURL,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetAll lists courses newest first.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, course_id, name, description, duration, level, image_url, created_at
		FROM courses
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.CourseID, &c.Name, &c.Description, &c.Duration, &c.Level, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// GetByCourseID retrieves a course by its public identifier.
func (r *CourseRepository) GetByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	query := `
		SELECT id, course_id, name, description, duration, level, image_url, created_at
		FROM courses
		WHERE course_id = $1
	`

	var c models.Course
	err := r.db.QueryRow(ctx, query, courseID).Scan(
		&c.ID, &c.CourseID, &c.Name, &c.Description, &c.Duration, &c.Level, &c.ImageURL, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &c, nil
}

// Update overwrites a course's mutable fields, image URL included.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET name = $1, description = $2, duration = $3, level = $4, image_url = $5 WHERE course_id = $6`,
		course.Name, course.Description, course.Duration, course.Level, course.ImageURL, course.CourseID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by its public identifier.
func (r *CourseRepository) Delete(ctx context.Context, courseID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Count returns the total number of courses.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// CountCreatedBetween counts courses created in [from, to).
func (r *CourseRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE created_at >= $1 AND created_at < $2`,
		from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses by month: %w", err)
	}
	return count, nil
}
