package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nasheeman/portal/internal/app/models"
)

// StudentRepository handles database operations for enrolled students and
// their attendance and progress records.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByGuardianID lists a guardian's children.
func (r *StudentRepository) GetByGuardianID(ctx context.Context, guardianID int64) ([]*models.Student, error) {
	query := `
		SELECT id, name, age, guardian_id, created_at
		FROM students
		WHERE guardian_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, guardianID)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Age, &s.GuardianID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// RecentAttendanceByGuardian returns the latest attendance rows across all of
// a guardian's children, newest first.
func (r *StudentRepository) RecentAttendanceByGuardian(ctx context.Context, guardianID int64, limit int) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.student_id, s.name, a.date, a.status
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		WHERE s.guardian_id = $1
		ORDER BY a.date DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, guardianID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	records := []*models.AttendanceRecord{}
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.StudentName, &rec.Date, &rec.Status); err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}

// RecentProgressByGuardian returns the latest progress reports across all of
// a guardian's children, newest first.
func (r *StudentRepository) RecentProgressByGuardian(ctx context.Context, guardianID int64, limit int) ([]*models.ProgressReport, error) {
	query := `
		SELECT p.id, p.student_id, s.name, p.subject, p.marks, p.comments, p.report_date
		FROM progress_reports p
		JOIN students s ON s.id = p.student_id
		WHERE s.guardian_id = $1
		ORDER BY p.report_date DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, guardianID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing progress reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.ProgressReport{}
	for rows.Next() {
		var rep models.ProgressReport
		if err := rows.Scan(&rep.ID, &rep.StudentID, &rep.StudentName, &rep.Subject, &rep.Marks, &rep.Comments, &rep.ReportDate); err != nil {
			return nil, fmt.Errorf("error scanning progress report: %w", err)
		}
		reports = append(reports, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress reports: %w", err)
	}

	return reports, nil
}

// Count returns the total number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
