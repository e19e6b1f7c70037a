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

// StaffRepository handles database operations for the sanctioned staffing table.
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

// Create inserts a new staffing row.
func (r *StaffRepository) Create(ctx context.Context, position *models.StaffPosition) error {
	query := `
		INSERT INTO staff_positions (designation, bps_grade, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		position.Designation, position.BPSGrade, position.Quantity,
	).Scan(&position.ID)
	if err != nil {
		return fmt.Errorf("error creating staff position: %w", err)
	}

	return nil
}

// GetAll lists staffing rows in insertion order.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.StaffPosition, error) {
	query := `
		SELECT id, designation, bps_grade, quantity
		FROM staff_positions
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing staff positions: %w", err)
	}
	defer rows.Close()

	positions := []*models.StaffPosition{}
	for rows.Next() {
		var p models.StaffPosition
		if err := rows.Scan(&p.ID, &p.Designation, &p.BPSGrade, &p.Quantity); err != nil {
			return nil, fmt.Errorf("error scanning staff position: %w", err)
		}
		positions = append(positions, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff positions: %w", err)
	}

	return positions, nil
}

// GetByID retrieves one staffing row.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffPosition, error) {
	query := `
		SELECT id, designation, bps_grade, quantity
		FROM staff_positions
		WHERE id = $1
	`

	var p models.StaffPosition
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Designation, &p.BPSGrade, &p.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff position: %w", err)
	}

	return &p, nil
}

// Update overwrites a staffing row.
func (r *StaffRepository) Update(ctx context.Context, position *models.StaffPosition) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE staff_positions SET designation = $1, bps_grade = $2, quantity = $3 WHERE id = $4`,
		position.Designation, position.BPSGrade, position.Quantity, position.ID)
	if err != nil {
		return fmt.Errorf("error updating staff position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// Delete removes a staffing row.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM staff_positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// TotalQuantity sums the sanctioned headcount across all rows.
func (r *StaffRepository) TotalQuantity(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM staff_positions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing staff quantities: %w", err)
	}
	return total, nil
}

// Count returns the number of staffing rows.
func (r *StaffRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff_positions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting staff positions: %w", err)
	}
	return count, nil
}
