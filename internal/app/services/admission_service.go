package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/filestorage"
	"github.com/nasheeman/portal/internal/pkg/formflow"
	"github.com/nasheeman/portal/internal/pkg/logger"
	"github.com/nasheeman/portal/internal/pkg/validation"
)

// admissionStore is the persistence surface the admission service needs.
type admissionStore interface {
	CreateWithDocuments(ctx context.Context, admission *models.Admission) error
	GetAll(ctx context.Context) ([]*models.Admission, error)
	GetByID(ctx context.Context, id int64) (*models.Admission, error)
	GetFilePathsByIDs(ctx context.Context, ids []int64) ([]string, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

// AdmissionService runs the admission submission workflow and the back-office
// admission operations.
type AdmissionService struct {
	admissionRepo admissionStore
	fileStore     filestorage.FileStore
	now           func() time.Time
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(admissionRepo admissionStore, fileStore filestorage.FileStore) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		fileStore:     fileStore,
		now:           time.Now,
	}
}

// Submit validates and stores one application. Validation runs strictly
// before any file is written; a storage or database failure after files were
// written removes them again.
func (s *AdmissionService) Submit(ctx context.Context, form *dto.AdmissionForm) (*models.Admission, error) {
	admission := &models.Admission{}

	pipeline := formflow.New().
		Require([]formflow.Field{
			{Name: "Student Name", Value: form.StudentName},
			{Name: "CNIC", Value: form.CNIC},
			{Name: "Date of Birth", Value: form.DateOfBirth},
			{Name: "Gender", Value: form.Gender},
			{Name: "Age", Value: form.Age},
			{Name: "Phone", Value: form.Phone},
			{Name: "Address", Value: form.Address},
			{Name: "Student Occupation", Value: form.StudentOccupation},
			{Name: "Parent Name", Value: form.ParentName},
			{Name: "Parent CNIC", Value: form.ParentCNIC},
			{Name: "Parent Phone", Value: form.ParentPhone},
			{Name: "Parent Occupation", Value: form.ParentOccupation},
			{Name: "Number of Siblings", Value: form.NumSiblings},
			{Name: "Sibling Disability", Value: form.SiblingDisability},
			{Name: "Guardian Name", Value: form.GuardianName},
			{Name: "Guardian Phone", Value: form.GuardianPhone},
			{Name: "Disability Name", Value: form.DisabilityName},
			{Name: "Medical History", Value: form.MedicalHistory},
			{Name: "Regular Medication", Value: form.RegularMedication},
			{Name: "Assistive Device", Value: form.AssistiveDevice},
			{Name: "Epilepsy", Value: form.Epilepsy},
			{Name: "Drug Addiction", Value: form.DrugAddiction},
			{Name: "Assistant", Value: form.Assistant},
			{Name: "Communicable Disease", Value: form.CommunicableDisease},
			{Name: "Education Level", Value: form.EducationLevel},
			{Name: "Course", Value: form.Course},
			{Name: "Admission Type", Value: form.AdmissionType},
			{Name: "Duration of Stay", Value: form.DurationStay},
			{Name: "Pick & Drop", Value: form.PickDrop},
			{Name: "Affidavit", Value: form.Affidavit},
			{Name: "Admission Date", Value: form.AdmissionDate},
		},
			"Student Occupation", "Sibling Disability", "Medical History",
			"Regular Medication", "Assistive Device", "Epilepsy",
			"Drug Addiction", "Assistant", "Communicable Disease",
			"Duration of Stay", "Pick & Drop").
		Check(func() error {
			if !validation.IsCNIC(form.CNIC) {
				return apperrors.NewValidationError("CNIC", "Invalid CNIC format. Use 12345-1234567-1.")
			}
			if !validation.IsCNIC(form.ParentCNIC) {
				return apperrors.NewValidationError("Parent CNIC", "Invalid Parent CNIC format. Use 12345-1234567-1.")
			}
			return nil
		}).
		Check(func() error {
			if !validation.IsPhone(form.Phone) {
				return apperrors.NewValidationError("Phone", "Invalid phone format. Use +923001234567.")
			}
			if !validation.IsPhone(form.ParentPhone) {
				return apperrors.NewValidationError("Parent Phone", "Invalid parent phone format. Use +923001234567.")
			}
			if !validation.IsPhone(form.GuardianPhone) {
				return apperrors.NewValidationError("Guardian Phone", "Invalid guardian phone format. Use +923001234567.")
			}
			return nil
		}).
		Check(func() error {
			age, ok := validation.IntInRange(form.Age, 1, 120)
			if !ok {
				return apperrors.NewValidationError("Age", "Age must be a number between 1 and 120.")
			}
			admission.Age = age
			return nil
		}).
		Check(func() error {
			dob, err := validation.ParseDate(form.DateOfBirth)
			if err != nil {
				return apperrors.NewValidationError("Date of Birth", "Invalid date of birth. Use YYYY-MM-DD.")
			}
			if dob.After(s.now()) {
				return apperrors.NewValidationError("Date of Birth", "Date of birth cannot be in the future.")
			}
			admission.DateOfBirth = dob

			admissionDate, err := validation.ParseDate(form.AdmissionDate)
			if err != nil {
				return apperrors.NewValidationError("Admission Date", "Invalid admission date. Use YYYY-MM-DD.")
			}
			if admissionDate.After(s.now()) {
				return apperrors.NewValidationError("Admission Date", "Admission date cannot be in the future.")
			}
			admission.AdmissionDate = admissionDate
			return nil
		}).
		Check(func() error {
			if !validation.IsOneOf(form.Gender, "M", "F") {
				return apperrors.NewValidationError("Gender", "Gender must be M or F.")
			}
			if !validation.IsOneOf(form.AdmissionType, models.AdmissionTypeDayScholar, models.AdmissionTypeHostelBoarder) {
				return apperrors.NewValidationError("Admission Type", "Admission type must be Day Scholar or Hostel Boarder.")
			}
			if !validation.IsOneOf(form.Affidavit, "Yes", "No") {
				return apperrors.NewValidationError("Affidavit", "Affidavit must be Yes or No.")
			}
			if form.Affidavit == "Yes" && form.AffidavitAgreement == "" {
				return apperrors.NewValidationError("Affidavit Agreement", "You must accept the affidavit agreement.")
			}
			return nil
		}).
		Check(func() error {
			if form.NumSiblings == "" {
				admission.NumSiblings = 0
				return nil
			}
			n, ok := validation.IntInRange(form.NumSiblings, 0, 1000)
			if !ok {
				return apperrors.NewValidationError("Number of Siblings", "Number of siblings must be a non-negative number.")
			}
			admission.NumSiblings = n
			return nil
		}).
		Check(func() error {
			if form.DurationStay == "" {
				return nil
			}
			n, ok := validation.IntInRange(form.DurationStay, 1, 1000)
			if !ok {
				return apperrors.NewValidationError("Duration of Stay", "Duration of stay must be a positive number.")
			}
			admission.DurationStay = &n
			return nil
		})

	if err := pipeline.Run(); err != nil {
		return nil, err
	}

	saver := formflow.NewFileSaver(s.fileStore)

	if err := saver.CheckAllowed(form.Photo, form.DisabilityCertificate); err != nil {
		return nil, err
	}
	if err := saver.CheckAllowed(form.Documents...); err != nil {
		return nil, err
	}
	if len(form.Documents) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrDocumentRequired,
			"At least one document must be uploaded.").WithField("Documents")
	}

	photoPath, err := saver.Save(form.Photo, filestorage.CategoryAdmissions, "photo")
	if err != nil {
		saver.Rollback()
		return nil, err
	}
	certificatePath, err := saver.Save(form.DisabilityCertificate, filestorage.CategoryAdmissions, "disability")
	if err != nil {
		saver.Rollback()
		return nil, err
	}
	documentPaths, err := saver.SaveAll(form.Documents, filestorage.CategoryAdmissions, "document")
	if err != nil {
		saver.Rollback()
		return nil, err
	}

	admission.StudentName = form.StudentName
	admission.CNIC = form.CNIC
	admission.Gender = form.Gender
	admission.Phone = form.Phone
	admission.Address = form.Address
	admission.StudentOccupation = optional(form.StudentOccupation)
	admission.ParentName = form.ParentName
	admission.ParentCNIC = form.ParentCNIC
	admission.ParentPhone = form.ParentPhone
	admission.ParentOccupation = form.ParentOccupation
	admission.SiblingDisability = optional(form.SiblingDisability)
	admission.GuardianName = form.GuardianName
	admission.GuardianPhone = form.GuardianPhone
	admission.DisabilityName = form.DisabilityName
	admission.MedicalHistory = optional(form.MedicalHistory)
	admission.RegularMedication = optional(form.RegularMedication)
	admission.AssistiveDevice = optional(form.AssistiveDevice)
	admission.Epilepsy = optional(form.Epilepsy)
	admission.DrugAddiction = optional(form.DrugAddiction)
	admission.Assistant = optional(form.Assistant)
	admission.CommunicableDisease = optional(form.CommunicableDisease)
	admission.EducationLevel = form.EducationLevel
	admission.Course = form.Course
	admission.AdmissionType = form.AdmissionType
	admission.PickDrop = optional(form.PickDrop)
	admission.Affidavit = form.Affidavit
	if photoPath != "" {
		admission.PhotoPath = &photoPath
	}
	if certificatePath != "" {
		admission.DisabilityCertificatePath = &certificatePath
	}
	admission.DocumentPaths = documentPaths

	if err := s.admissionRepo.CreateWithDocuments(ctx, admission); err != nil {
		saver.Rollback()
		return nil, fmt.Errorf("failed to store admission: %w", err)
	}

	logger.Info().Int64("admission_id", admission.ID).Str("student", admission.StudentName).Msg("Admission application stored")
	return admission, nil
}

// List returns every application, newest first.
func (s *AdmissionService) List(ctx context.Context) ([]*models.Admission, error) {
	return s.admissionRepo.GetAll(ctx)
}

// Get returns one application with its documents.
func (s *AdmissionService) Get(ctx context.Context, id int64) (*models.Admission, error) {
	return s.admissionRepo.GetByID(ctx, id)
}

// BulkDelete removes the given applications and their stored files. File
// removal is best effort; the database rows are authoritative.
func (s *AdmissionService) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.NewBadRequestError("No admission ids given.")
	}

	paths, err := s.admissionRepo.GetFilePathsByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	deleted, err := s.admissionRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.ErrAdmissionNotFound
	}

	for _, path := range paths {
		if err := s.fileStore.Delete(path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to remove admission file")
		}
	}

	logger.Info().Int64("deleted", deleted).Msg("Admissions deleted")
	return deleted, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
