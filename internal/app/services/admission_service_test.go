package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFileStore struct {
	saved    []string
	deleted  []string
	failSave bool
}

func (f *fakeFileStore) Save(fh *multipart.FileHeader, category, prefix string) (string, error) {
	if f.failSave {
		return "", errors.New("disk full")
	}
	path := fmt.Sprintf("%s/%s_%s", category, prefix, fh.Filename)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeFileStore) Delete(relPath string) error {
	f.deleted = append(f.deleted, relPath)
	return nil
}

func (f *fakeFileStore) Allowed(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

type fakeAdmissionStore struct {
	created    []*models.Admission
	failCreate bool
	admissions []*models.Admission
	filePaths  []string
	deleted    []int64
}

func (f *fakeAdmissionStore) CreateWithDocuments(ctx context.Context, admission *models.Admission) error {
	if f.failCreate {
		return errors.New("database down")
	}
	admission.ID = int64(len(f.created) + 1)
	f.created = append(f.created, admission)
	return nil
}

func (f *fakeAdmissionStore) GetAll(ctx context.Context) ([]*models.Admission, error) {
	return f.admissions, nil
}

func (f *fakeAdmissionStore) GetByID(ctx context.Context, id int64) (*models.Admission, error) {
	for _, a := range f.admissions {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdmissionNotFound
}

func (f *fakeAdmissionStore) GetFilePathsByIDs(ctx context.Context, ids []int64) ([]string, error) {
	return f.filePaths, nil
}

func (f *fakeAdmissionStore) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	f.deleted = append(f.deleted, ids...)
	var n int64
	for _, a := range f.admissions {
		for _, id := range ids {
			if a.ID == id {
				n++
			}
		}
	}
	return n, nil
}

func validAdmissionForm() *dto.AdmissionForm {
	return &dto.AdmissionForm{
		StudentName:      "Ahmed Khan",
		CNIC:             "12345-1234567-1",
		DateOfBirth:      "2010-04-12",
		Gender:           "M",
		Age:              "15",
		Phone:            "+923001234567",
		Address:          "House 12, Street 4, Lahore",
		ParentName:       "Imran Khan",
		ParentCNIC:       "54321-7654321-9",
		ParentPhone:      "+923007654321",
		ParentOccupation: "Teacher",
		NumSiblings:      "2",
		GuardianName:     "Imran Khan",
		GuardianPhone:    "+923007654321",
		DisabilityName:   "Hearing impairment",
		EducationLevel:   "Primary",
		Course:           "Basic Literacy",
		AdmissionType:    models.AdmissionTypeDayScholar,
		Affidavit:        "No",
		AdmissionDate:    "2025-05-01",
		Documents: []*multipart.FileHeader{
			{Filename: "birth_certificate.pdf"},
		},
	}
}

func newTestAdmissionService(repo *fakeAdmissionStore, store *fakeFileStore) *AdmissionService {
	svc := NewAdmissionService(repo, store)
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestSubmitValidApplication(t *testing.T) {
	repo := &fakeAdmissionStore{}
	store := &fakeFileStore{}
	svc := newTestAdmissionService(repo, store)

	admission, err := svc.Submit(context.Background(), validAdmissionForm())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(1), admission.ID)
	assert.Equal(t, "Ahmed Khan", admission.StudentName)
	assert.Equal(t, 15, admission.Age)
	assert.Equal(t, 2, admission.NumSiblings)
	require.Len(t, admission.DocumentPaths, 1)
	assert.Len(t, store.saved, 1)
	assert.Empty(t, store.deleted)
}

func TestSubmitMissingCourse(t *testing.T) {
	repo := &fakeAdmissionStore{}
	store := &fakeFileStore{}
	svc := newTestAdmissionService(repo, store)

	form := validAdmissionForm()
	form.Course = ""

	_, err := svc.Submit(context.Background(), form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Course")
	assert.Empty(t, repo.created)
	assert.Empty(t, store.saved)
}

func TestSubmitAgeOutOfRange(t *testing.T) {
	repo := &fakeAdmissionStore{}
	store := &fakeFileStore{}
	svc := newTestAdmissionService(repo, store)

	form := validAdmissionForm()
	form.Age = "130"

	_, err := svc.Submit(context.Background(), form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Age")
	assert.Empty(t, repo.created)
	assert.Empty(t, store.saved)
}

func TestSubmitValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.AdmissionForm)
		wantField string
	}{
		{"bad cnic", func(f *dto.AdmissionForm) { f.CNIC = "1234-1234567-1" }, "CNIC"},
		{"bad parent phone", func(f *dto.AdmissionForm) { f.ParentPhone = "03001234567" }, "Parent Phone"},
		{"bad gender", func(f *dto.AdmissionForm) { f.Gender = "X" }, "Gender"},
		{"bad admission type", func(f *dto.AdmissionForm) { f.AdmissionType = "Weekly" }, "Admission Type"},
		{"future dob", func(f *dto.AdmissionForm) { f.DateOfBirth = "2030-01-01" }, "Date of Birth"},
		{"affidavit yes without agreement", func(f *dto.AdmissionForm) { f.Affidavit = "Yes" }, "Affidavit Agreement"},
		{"negative siblings", func(f *dto.AdmissionForm) { f.NumSiblings = "-1" }, "Number of Siblings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAdmissionStore{}
			store := &fakeFileStore{}
			svc := newTestAdmissionService(repo, store)

			form := validAdmissionForm()
			tt.mutate(form)

			_, err := svc.Submit(context.Background(), form)
			require.Error(t, err)

			var customErr *apperrors.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.wantField, customErr.Field)
			assert.Empty(t, repo.created)
			assert.Empty(t, store.saved)
		})
	}
}

func TestSubmitRequiresDocument(t *testing.T) {
	repo := &fakeAdmissionStore{}
	store := &fakeFileStore{}
	svc := newTestAdmissionService(repo, store)

	form := validAdmissionForm()
	form.Documents = nil

	_, err := svc.Submit(context.Background(), form)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDocumentRequired)
	assert.Empty(t, store.saved)
}

func TestSubmitRejectsBadExtensionBeforeWriting(t *testing.T) {
	repo := &fakeAdmissionStore{}
	store := &fakeFileStore{}
	svc := newTestAdmissionService(repo, store)

	form := validAdmissionForm()
	form.Documents = append(form.Documents, &multipart.FileHeader{Filename: "virus.exe"})

	_, err := svc.Submit(context.Background(), form)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
	assert.Empty(t, store.saved)
	assert.Empty(t, repo.created)
}

func TestSubmitRollsBackFilesOnDatabaseFailure(t *testing.T) {
	repo := &fakeAdmissionStore{failCreate: true}
	store := &fakeFileStore{}
	svc := newTestAdmissionService(repo, store)

	form := validAdmissionForm()
	form.Photo = &multipart.FileHeader{Filename: "face.jpg"}

	_, err := svc.Submit(context.Background(), form)
	require.Error(t, err)
	assert.NotEmpty(t, store.saved)
	assert.ElementsMatch(t, store.saved, store.deleted)
}

func TestBulkDelete(t *testing.T) {
	repo := &fakeAdmissionStore{
		admissions: []*models.Admission{{ID: 1}, {ID: 2}},
		filePaths:  []string{"admissions/photo_a.jpg", "admissions/document_b.pdf"},
	}
	store := &fakeFileStore{}
	svc := newTestAdmissionService(repo, store)

	deleted, err := svc.BulkDelete(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.ElementsMatch(t, repo.filePaths, store.deleted)
}

func TestBulkDeleteEmptyIDs(t *testing.T) {
	svc := newTestAdmissionService(&fakeAdmissionStore{}, &fakeFileStore{})

	_, err := svc.BulkDelete(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestBulkDeleteNothingMatched(t *testing.T) {
	svc := newTestAdmissionService(&fakeAdmissionStore{}, &fakeFileStore{})

	_, err := svc.BulkDelete(context.Background(), []int64{99})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAdmissionNotFound)
}
