package services

import (
	"context"
	"testing"
	"time"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuardianStore struct {
	guardian        *models.Guardian
	profileUpdates  int
	passwordUpdates int
}

func (f *fakeGuardianStore) GetByID(ctx context.Context, id int64) (*models.Guardian, error) {
	if f.guardian == nil || f.guardian.ID != id {
		return nil, apperrors.ErrGuardianNotFound
	}
	g := *f.guardian
	return &g, nil
}

func (f *fakeGuardianStore) UpdateProfile(ctx context.Context, guardian *models.Guardian) error {
	if f.guardian == nil || f.guardian.ID != guardian.ID {
		return apperrors.ErrGuardianNotFound
	}
	f.profileUpdates++
	f.guardian.FullName = guardian.FullName
	f.guardian.Phone = guardian.Phone
	f.guardian.CNIC = guardian.CNIC
	return nil
}

func (f *fakeGuardianStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if f.guardian == nil || f.guardian.Email != email {
		return apperrors.ErrGuardianNotFound
	}
	f.passwordUpdates++
	f.guardian.PasswordHash = passwordHash
	return nil
}

type fakeStudentStore struct {
	children   []*models.Student
	attendance []*models.AttendanceRecord
	progress   []*models.ProgressReport
}

func (f *fakeStudentStore) GetByGuardianID(ctx context.Context, guardianID int64) ([]*models.Student, error) {
	return f.children, nil
}

func (f *fakeStudentStore) RecentAttendanceByGuardian(ctx context.Context, guardianID int64, limit int) ([]*models.AttendanceRecord, error) {
	if len(f.attendance) > limit {
		return f.attendance[:limit], nil
	}
	return f.attendance, nil
}

func (f *fakeStudentStore) RecentProgressByGuardian(ctx context.Context, guardianID int64, limit int) ([]*models.ProgressReport, error) {
	if len(f.progress) > limit {
		return f.progress[:limit], nil
	}
	return f.progress, nil
}

type fakeEventLister struct {
	upcoming []*models.Event
}

func (f *fakeEventLister) Upcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	if len(f.upcoming) > limit {
		return f.upcoming[:limit], nil
	}
	return f.upcoming, nil
}

func testGuardian() *models.Guardian {
	phone := "+923001234567"
	return &models.Guardian{
		ID:           1,
		FullName:     "Sara",
		Email:        "sara@example.com",
		PasswordHash: "old-hash",
		Phone:        &phone,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpdateProfileChangesFields(t *testing.T) {
	store := &fakeGuardianStore{guardian: testGuardian()}
	svc := NewGuardianService(store, &fakeStudentStore{}, &fakeEventLister{})

	resp, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{
		FullName: "Sara Khan",
		Phone:    "+923009999999",
		CNIC:     "12345-1234567-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sara Khan", resp.FullName)
	assert.Equal(t, 1, store.profileUpdates)
	assert.Equal(t, 0, store.passwordUpdates)
	assert.Equal(t, "old-hash", store.guardian.PasswordHash)
}

func TestUpdateProfileWithPasswordChange(t *testing.T) {
	store := &fakeGuardianStore{guardian: testGuardian()}
	svc := NewGuardianService(store, &fakeStudentStore{}, &fakeEventLister{})

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{
		FullName:        "Sara Khan",
		Password:        "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.profileUpdates)
	assert.Equal(t, 1, store.passwordUpdates)
	assert.True(t, auth.CheckPassword(store.guardian.PasswordHash, "brand-new-pass"))
}

func TestUpdateProfilePasswordMismatchWritesNothing(t *testing.T) {
	store := &fakeGuardianStore{guardian: testGuardian()}
	svc := NewGuardianService(store, &fakeStudentStore{}, &fakeEventLister{})

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{
		FullName:        "Sara Khan",
		Password:        "brand-new-pass",
		ConfirmPassword: "something-else",
	})
	require.Error(t, err)

	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "confirmPassword", customErr.Field)

	// The rejected request must not have touched the account.
	assert.Equal(t, 0, store.profileUpdates)
	assert.Equal(t, 0, store.passwordUpdates)
	assert.Equal(t, "Sara", store.guardian.FullName)
	assert.Equal(t, "old-hash", store.guardian.PasswordHash)
}

func TestUpdateProfileBadPhoneWritesNothing(t *testing.T) {
	store := &fakeGuardianStore{guardian: testGuardian()}
	svc := NewGuardianService(store, &fakeStudentStore{}, &fakeEventLister{})

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{
		FullName: "Sara Khan",
		Phone:    "03001234567",
	})
	require.Error(t, err)
	assert.Equal(t, 0, store.profileUpdates)
	assert.Equal(t, "Sara", store.guardian.FullName)
}

func TestDashboardAggregates(t *testing.T) {
	store := &fakeGuardianStore{guardian: testGuardian()}
	students := &fakeStudentStore{
		children: []*models.Student{{ID: 1, Name: "Ali", GuardianID: 1}},
		attendance: []*models.AttendanceRecord{
			{ID: 1, StudentID: 1, StudentName: "Ali", Status: "Present"},
			{ID: 2, StudentID: 1, StudentName: "Ali", Status: "Absent"},
			{ID: 3, StudentID: 1, StudentName: "Ali", Status: "Present"},
			{ID: 4, StudentID: 1, StudentName: "Ali", Status: "Present"},
		},
	}
	events := &fakeEventLister{upcoming: []*models.Event{
		{ID: 1, Title: "Sports Day"},
		{ID: 2, Title: "Open House"},
		{ID: 3, Title: "Annual Dinner"},
		{ID: 4, Title: "Exam Week"},
	}}
	svc := NewGuardianService(store, students, events)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Sara", resp.GuardianName)
	assert.Len(t, resp.UpcomingEvents, dashboardEventLimit)
	assert.Len(t, resp.Attendance, dashboardRecordLimit)
	assert.Len(t, resp.Children, 1)
}

func TestDashboardUnknownGuardian(t *testing.T) {
	svc := NewGuardianService(&fakeGuardianStore{}, &fakeStudentStore{}, &fakeEventLister{})

	_, err := svc.Dashboard(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrGuardianNotFound)
}
