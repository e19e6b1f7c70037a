package services

import (
	"context"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/repositories"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/filestorage"
	"github.com/nasheeman/portal/internal/pkg/formflow"
	"github.com/nasheeman/portal/internal/pkg/logger"
	"github.com/nasheeman/portal/internal/pkg/validation"
)

// PopupService manages site popups and their image lifecycle.
type PopupService struct {
	popupRepo *repositories.PopupRepository
	fileStore filestorage.FileStore
}

// NewPopupService creates a new popup service
func NewPopupService(popupRepo *repositories.PopupRepository, fileStore filestorage.FileStore) *PopupService {
	return &PopupService{
		popupRepo: popupRepo,
		fileStore: fileStore,
	}
}

// ListActive returns popups whose expiry has not passed, for the public site.
func (s *PopupService) ListActive(ctx context.Context) ([]*models.Popup, error) {
	return s.popupRepo.Active(ctx)
}

// ListAll returns every popup for the back office.
func (s *PopupService) ListAll(ctx context.Context) ([]*models.Popup, error) {
	return s.popupRepo.GetAll(ctx)
}

// Create validates the form, stores the optional image, and inserts the row.
func (s *PopupService) Create(ctx context.Context, form *dto.PopupForm) (*models.Popup, error) {
	popup := &models.Popup{}
	if err := s.validateForm(form, popup); err != nil {
		return nil, err
	}

	saver := formflow.NewFileSaver(s.fileStore)
	if err := saver.CheckAllowed(form.Image); err != nil {
		return nil, err
	}

	imagePath, err := saver.Save(form.Image, filestorage.CategoryPopups, "popup")
	if err != nil {
		return nil, err
	}
	if imagePath != "" {
		popup.ImageURL = &imagePath
	}

	if err := s.popupRepo.Create(ctx, popup); err != nil {
		saver.Rollback()
		return nil, err
	}

	logger.Info().Int64("popup_id", popup.ID).Msg("Popup created")
	return popup, nil
}

// Update overwrites a popup. A new image replaces and removes the old file.
func (s *PopupService) Update(ctx context.Context, id int64, form *dto.PopupForm) (*models.Popup, error) {
	popup, err := s.popupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldImage := popup.ImageURL
	if err := s.validateForm(form, popup); err != nil {
		return nil, err
	}

	saver := formflow.NewFileSaver(s.fileStore)
	if err := saver.CheckAllowed(form.Image); err != nil {
		return nil, err
	}

	newImagePath, err := saver.Save(form.Image, filestorage.CategoryPopups, "popup")
	if err != nil {
		return nil, err
	}
	if newImagePath != "" {
		popup.ImageURL = &newImagePath
	}

	if err := s.popupRepo.Update(ctx, popup); err != nil {
		saver.Rollback()
		return nil, err
	}

	if newImagePath != "" && oldImage != nil {
		if err := s.fileStore.Delete(*oldImage); err != nil {
			logger.Error().Err(err).Str("path", *oldImage).Msg("Failed to remove replaced popup image")
		}
	}

	logger.Info().Int64("popup_id", popup.ID).Msg("Popup updated")
	return popup, nil
}

// Delete removes a popup and its image file when one is stored.
func (s *PopupService) Delete(ctx context.Context, id int64) error {
	popup, err := s.popupRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.popupRepo.Delete(ctx, id); err != nil {
		return err
	}

	if popup.ImageURL != nil {
		if err := s.fileStore.Delete(*popup.ImageURL); err != nil {
			logger.Error().Err(err).Str("path", *popup.ImageURL).Msg("Failed to remove popup image")
		}
	}

	logger.Info().Int64("popup_id", id).Msg("Popup deleted")
	return nil
}

func (s *PopupService) validateForm(form *dto.PopupForm, popup *models.Popup) error {
	err := formflow.New().
		Require([]formflow.Field{
			{Name: "Message", Value: form.Message},
		}).
		Check(func() error {
			if form.ShowUntil == "" {
				popup.ShowUntil = nil
				return nil
			}
			showUntil, err := validation.ParseDate(form.ShowUntil)
			if err != nil {
				return apperrors.NewValidationError("Show Until", "Invalid date. Use YYYY-MM-DD.")
			}
			popup.ShowUntil = &showUntil
			return nil
		}).
		Run()
	if err != nil {
		return err
	}

	popup.Title = optional(form.Title)
	popup.Message = form.Message
	popup.Type = optional(form.Type)
	return nil
}
