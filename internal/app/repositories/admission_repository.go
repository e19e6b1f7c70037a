package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/db"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
)

// AdmissionRepository handles database operations for admission applications
// and their uploaded documents.
type AdmissionRepository struct {
	db *pgxpool.Pool
}

// NewAdmissionRepository creates a new admission repository
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
	}
}

// CreateWithDocuments inserts an application and its document rows in one
// transaction. On success the admission's ID and CreatedAt are populated.
func (r *AdmissionRepository) CreateWithDocuments(ctx context.Context, admission *models.Admission) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO admissions (
				student_name, cnic, dob, gender, age, phone, address,
				student_occupation, parent_name, parent_cnic, parent_phone,
				parent_occupation, num_siblings, sibling_disability,
				guardian_name, guardian_phone, disability_certificate_path,
				disability_name, medical_history, regular_medication,
				assistive_device, epilepsy, drug_addiction, assistant,
				communicable_disease, education_level, course, admission_type,
				duration_stay, pick_drop, affidavit, admission_date, photo_path
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
				$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
				$27, $28, $29, $30, $31, $32, $33
			)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query,
			admission.StudentName,
			admission.CNIC,
			admission.DateOfBirth,
			admission.Gender,
			admission.Age,
			admission.Phone,
			admission.Address,
			admission.StudentOccupation,
			admission.ParentName,
			admission.ParentCNIC,
			admission.ParentPhone,
			admission.ParentOccupation,
			admission.NumSiblings,
			admission.SiblingDisability,
			admission.GuardianName,
			admission.GuardianPhone,
			admission.DisabilityCertificatePath,
			admission.DisabilityName,
			admission.MedicalHistory,
			admission.RegularMedication,
			admission.AssistiveDevice,
			admission.Epilepsy,
			admission.DrugAddiction,
			admission.Assistant,
			admission.CommunicableDisease,
			admission.EducationLevel,
			admission.Course,
			admission.AdmissionType,
			admission.DurationStay,
			admission.PickDrop,
			admission.Affidavit,
			admission.AdmissionDate,
			admission.PhotoPath,
		).Scan(&admission.ID, &admission.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating admission: %w", err)
		}

		for _, path := range admission.DocumentPaths {
			_, err := tx.Exec(ctx,
				`INSERT INTO admission_documents (admission_id, path) VALUES ($1, $2)`,
				admission.ID, path)
			if err != nil {
				return fmt.Errorf("error creating admission document: %w", err)
			}
		}

		return nil
	})
}

// GetAll lists applications newest first, document paths included.
func (r *AdmissionRepository) GetAll(ctx context.Context) ([]*models.Admission, error) {
	query := r.selectQuery() + ` ORDER BY a.created_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing admissions: %w", err)
	}
	defer rows.Close()

	admissions := []*models.Admission{}
	byID := map[int64]*models.Admission{}
	for rows.Next() {
		a, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		admissions = append(admissions, a)
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admissions: %w", err)
	}

	if len(admissions) == 0 {
		return admissions, nil
	}

	docRows, err := r.db.Query(ctx,
		`SELECT admission_id, path FROM admission_documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing admission documents: %w", err)
	}
	defer docRows.Close()

	for docRows.Next() {
		var admissionID int64
		var path string
		if err := docRows.Scan(&admissionID, &path); err != nil {
			return nil, fmt.Errorf("error scanning admission document: %w", err)
		}
		if a, ok := byID[admissionID]; ok {
			a.DocumentPaths = append(a.DocumentPaths, path)
		}
	}
	if err := docRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admission documents: %w", err)
	}

	return admissions, nil
}

// GetByID retrieves one application with its document paths.
func (r *AdmissionRepository) GetByID(ctx context.Context, id int64) (*models.Admission, error) {
	query := r.selectQuery() + ` WHERE a.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admission: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error retrieving admission: %w", err)
		}
		return nil, apperrors.ErrAdmissionNotFound
	}

	admission, err := r.scanRow(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	docRows, err := r.db.Query(ctx,
		`SELECT path FROM admission_documents WHERE admission_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("error listing admission documents: %w", err)
	}
	defer docRows.Close()

	for docRows.Next() {
		var path string
		if err := docRows.Scan(&path); err != nil {
			return nil, fmt.Errorf("error scanning admission document: %w", err)
		}
		admission.DocumentPaths = append(admission.DocumentPaths, path)
	}
	if err := docRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admission documents: %w", err)
	}

	return admission, nil
}

// GetFilePathsByIDs collects every stored file path (photo, certificate and
// documents) of the given applications so callers can remove them from disk.
func (r *AdmissionRepository) GetFilePathsByIDs(ctx context.Context, ids []int64) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	paths := []string{}

	rows, err := r.db.Query(ctx,
		`SELECT photo_path, disability_certificate_path FROM admissions WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error listing admission file paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var photo, certificate *string
		if err := rows.Scan(&photo, &certificate); err != nil {
			return nil, fmt.Errorf("error scanning admission file paths: %w", err)
		}
		if photo != nil && *photo != "" {
			paths = append(paths, *photo)
		}
		if certificate != nil && *certificate != "" {
			paths = append(paths, *certificate)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admission file paths: %w", err)
	}

	docRows, err := r.db.Query(ctx,
		`SELECT path FROM admission_documents WHERE admission_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error listing admission document paths: %w", err)
	}
	defer docRows.Close()

	for docRows.Next() {
		var path string
		if err := docRows.Scan(&path); err != nil {
			return nil, fmt.Errorf("error scanning admission document path: %w", err)
		}
		paths = append(paths, path)
	}
	if err := docRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admission document paths: %w", err)
	}

	return paths, nil
}

// DeleteByIDs removes the given applications. Document rows go with them via
// the foreign key cascade. Returns the number of deleted applications.
func (r *AdmissionRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admissions WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("error deleting admissions: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Count returns the total number of applications.
func (r *AdmissionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admissions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting admissions: %w", err)
	}
	return count, nil
}

func (r *AdmissionRepository) selectQuery() string {
	return `
		SELECT a.id, a.student_name, a.cnic, a.dob, a.gender, a.age, a.phone,
			a.address, a.student_occupation, a.parent_name, a.parent_cnic,
			a.parent_phone, a.parent_occupation, a.num_siblings,
			a.sibling_disability, a.guardian_name, a.guardian_phone,
			a.disability_certificate_path, a.disability_name,
			a.medical_history, a.regular_medication, a.assistive_device,
			a.epilepsy, a.drug_addiction, a.assistant, a.communicable_disease,
			a.education_level, a.course, a.admission_type, a.duration_stay,
			a.pick_drop, a.affidavit, a.admission_date, a.photo_path,
			a.created_at
		FROM admissions a`
}

func (r *AdmissionRepository) scanRow(rows pgx.Rows) (*models.Admission, error) {
	var a models.Admission
	err := rows.Scan(
		&a.ID,
		&a.StudentName,
		&a.CNIC,
		&a.DateOfBirth,
		&a.Gender,
		&a.Age,
		&a.Phone,
		&a.Address,
		&a.StudentOccupation,
		&a.ParentName,
		&a.ParentCNIC,
		&a.ParentPhone,
		&a.ParentOccupation,
		&a.NumSiblings,
		&a.SiblingDisability,
		&a.GuardianName,
		&a.GuardianPhone,
		&a.DisabilityCertificatePath,
		&a.DisabilityName,
		&a.MedicalHistory,
		&a.RegularMedication,
		&a.AssistiveDevice,
		&a.Epilepsy,
		&a.DrugAddiction,
		&a.Assistant,
		&a.CommunicableDisease,
		&a.EducationLevel,
		&a.Course,
		&a.AdmissionType,
		&a.DurationStay,
		&a.PickDrop,
		&a.Affidavit,
		&a.AdmissionDate,
		&a.PhotoPath,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdmissionNotFound
		}
		return nil, fmt.Errorf("error scanning admission: %w", err)
	}
	a.DocumentPaths = []string{}
	return &a, nil
}
