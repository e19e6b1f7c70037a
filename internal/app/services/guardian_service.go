package services

import (
	"context"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/nasheeman/portal/internal/pkg/logger"
	"github.com/nasheeman/portal/internal/pkg/validation"
)

// Dashboard item caps for the guardian landing page.
const (
	dashboardEventLimit  = 3
	dashboardRecordLimit = 3
)

// guardianStore is the account surface the guardian service needs.
type guardianStore interface {
	GetByID(ctx context.Context, id int64) (*models.Guardian, error)
	UpdateProfile(ctx context.Context, guardian *models.Guardian) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// studentStore serves the guardian's children and their records.
type studentStore interface {
	GetByGuardianID(ctx context.Context, guardianID int64) ([]*models.Student, error)
	RecentAttendanceByGuardian(ctx context.Context, guardianID int64, limit int) ([]*models.AttendanceRecord, error)
	RecentProgressByGuardian(ctx context.Context, guardianID int64, limit int) ([]*models.ProgressReport, error)
}

// upcomingEventLister serves the dashboard's event strip.
type upcomingEventLister interface {
	Upcoming(ctx context.Context, limit int) ([]*models.Event, error)
}

// GuardianService serves the guardian dashboard and profile.
type GuardianService struct {
	guardianRepo guardianStore
	studentRepo  studentStore
	eventRepo    upcomingEventLister
}

// NewGuardianService creates a new guardian service
func NewGuardianService(
	guardianRepo guardianStore,
	studentRepo studentStore,
	eventRepo upcomingEventLister,
) *GuardianService {
	return &GuardianService{
		guardianRepo: guardianRepo,
		studentRepo:  studentRepo,
		eventRepo:    eventRepo,
	}
}

// Dashboard aggregates the guardian landing page: upcoming events, children,
// and the latest attendance and progress rows across them.
func (s *GuardianService) Dashboard(ctx context.Context, guardianID int64) (*dto.GuardianDashboardResponse, error) {
	guardian, err := s.guardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.Upcoming(ctx, dashboardEventLimit)
	if err != nil {
		return nil, err
	}

	children, err := s.studentRepo.GetByGuardianID(ctx, guardianID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.studentRepo.RecentAttendanceByGuardian(ctx, guardianID, dashboardRecordLimit)
	if err != nil {
		return nil, err
	}

	progress, err := s.studentRepo.RecentProgressByGuardian(ctx, guardianID, dashboardRecordLimit)
	if err != nil {
		return nil, err
	}

	return &dto.GuardianDashboardResponse{
		GuardianName:    guardian.FullName,
		UpcomingEvents:  events,
		Children:        children,
		Attendance:      attendance,
		ProgressReports: progress,
	}, nil
}

// Profile returns the guardian's account details.
func (s *GuardianService) Profile(ctx context.Context, guardianID int64) (*dto.GuardianProfileResponse, error) {
	guardian, err := s.guardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		return nil, err
	}

	return &dto.GuardianProfileResponse{
		FullName: guardian.FullName,
		Email:    guardian.Email,
		Phone:    guardian.Phone,
		CNIC:     guardian.CNIC,
	}, nil
}

// UpdateProfile updates the guardian's own account, optionally changing the
// password when one is supplied. All validation happens before the first
// write so a rejected request leaves the account untouched.
func (s *GuardianService) UpdateProfile(ctx context.Context, guardianID int64, req *dto.UpdateProfileRequest) (*dto.GuardianProfileResponse, error) {
	guardian, err := s.guardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" && !validation.IsPhone(req.Phone) {
		return nil, apperrors.NewValidationError("phone", "Invalid phone format. Use +923001234567.")
	}
	if req.CNIC != "" && !validation.IsCNIC(req.CNIC) {
		return nil, apperrors.NewValidationError("cnic", "Invalid CNIC format. Use 12345-1234567-1.")
	}

	var passwordHash string
	if req.Password != "" {
		if req.Password != req.ConfirmPassword {
			return nil, apperrors.NewValidationError("confirmPassword", "Passwords do not match.")
		}
		passwordHash, err = auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
	}

	guardian.FullName = req.FullName
	guardian.Phone = optional(req.Phone)
	guardian.CNIC = optional(req.CNIC)

	if err := s.guardianRepo.UpdateProfile(ctx, guardian); err != nil {
		return nil, err
	}

	if passwordHash != "" {
		if err := s.guardianRepo.UpdatePassword(ctx, guardian.Email, passwordHash); err != nil {
			return nil, err
		}
	}

	logger.Info().Int64("guardian_id", guardianID).Msg("Guardian profile updated")
	return &dto.GuardianProfileResponse{
		FullName: guardian.FullName,
		Email:    guardian.Email,
		Phone:    guardian.Phone,
		CNIC:     guardian.CNIC,
	}, nil
}
