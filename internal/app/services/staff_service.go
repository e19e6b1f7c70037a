package services

import (
	"context"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/repositories"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/formflow"
	"github.com/nasheeman/portal/internal/pkg/logger"
	"github.com/nasheeman/portal/internal/pkg/validation"
)

// StaffService manages the sanctioned staffing table.
type StaffService struct {
	staffRepo *repositories.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo *repositories.StaffRepository) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
	}
}

// List returns the staffing table in insertion order.
func (s *StaffService) List(ctx context.Context) ([]*models.StaffPosition, error) {
	return s.staffRepo.GetAll(ctx)
}

// Create validates and inserts a staffing row.
func (s *StaffService) Create(ctx context.Context, form *dto.StaffForm) (*models.StaffPosition, error) {
	position := &models.StaffPosition{}
	if err := s.validateForm(form, position); err != nil {
		return nil, err
	}

	if err := s.staffRepo.Create(ctx, position); err != nil {
		return nil, err
	}

	logger.Info().Int64("staff_id", position.ID).Str("designation", position.Designation).Msg("Staff position created")
	return position, nil
}

// Update overwrites a staffing row.
func (s *StaffService) Update(ctx context.Context, id int64, form *dto.StaffForm) (*models.StaffPosition, error) {
	position, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateForm(form, position); err != nil {
		return nil, err
	}

	if err := s.staffRepo.Update(ctx, position); err != nil {
		return nil, err
	}

	logger.Info().Int64("staff_id", position.ID).Msg("Staff position updated")
	return position, nil
}

// Delete removes a staffing row.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("staff_id", id).Msg("Staff position deleted")
	return nil
}

func (s *StaffService) validateForm(form *dto.StaffForm, position *models.StaffPosition) error {
	err := formflow.New().
		Require([]formflow.Field{
			{Name: "Designation", Value: form.Designation},
			{Name: "BPS Grade", Value: form.BPSGrade},
			{Name: "Quantity", Value: form.Quantity},
		}).
		Check(func() error {
			quantity, ok := validation.IntInRange(form.Quantity, 1, 100000)
			if !ok {
				return apperrors.NewValidationError("Quantity", "Quantity must be a number of at least 1.")
			}
			position.Quantity = quantity
			return nil
		}).
		Run()
	if err != nil {
		return err
	}

	position.Designation = form.Designation
	position.BPSGrade = form.BPSGrade
	return nil
}
