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

// EventService manages events and their image lifecycle.
type EventService struct {
	eventRepo *repositories.EventRepository
	fileStore filestorage.FileStore
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository, fileStore filestorage.FileStore) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		fileStore: fileStore,
	}
}

// List returns events newest first, optionally capped for the home page.
func (s *EventService) List(ctx context.Context, limit int) ([]*models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// Create validates the form, stores the optional image, and inserts the row.
func (s *EventService) Create(ctx context.Context, form *dto.EventForm) (*models.Event, error) {
	event := &models.Event{}
	if err := s.validateForm(form, event); err != nil {
		return nil, err
	}

	saver := formflow.NewFileSaver(s.fileStore)
	if err := saver.CheckAllowed(form.Image); err != nil {
		return nil, err
	}

	imagePath, err := saver.Save(form.Image, filestorage.CategoryEvents, "event")
	if err != nil {
		return nil, err
	}
	if imagePath != "" {
		event.ImageURL = &imagePath
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		saver.Rollback()
		return nil, err
	}

	logger.Info().Int64("event_id", event.ID).Str("title", event.Title).Msg("Event created")
	return event, nil
}

// Update overwrites an event. A new image replaces and removes the old file.
func (s *EventService) Update(ctx context.Context, id int64, form *dto.EventForm) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldImage := event.ImageURL
	if err := s.validateForm(form, event); err != nil {
		return nil, err
	}

	saver := formflow.NewFileSaver(s.fileStore)
	if err := saver.CheckAllowed(form.Image); err != nil {
		return nil, err
	}

	newImagePath, err := saver.Save(form.Image, filestorage.CategoryEvents, "event")
	if err != nil {
		return nil, err
	}
	if newImagePath != "" {
		event.ImageURL = &newImagePath
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		saver.Rollback()
		return nil, err
	}

	if newImagePath != "" && oldImage != nil {
		if err := s.fileStore.Delete(*oldImage); err != nil {
			logger.Error().Err(err).Str("path", *oldImage).Msg("Failed to remove replaced event image")
		}
	}

	logger.Info().Int64("event_id", event.ID).Msg("Event updated")
	return event, nil
}

// Delete removes an event and its image file when one is stored.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	if event.ImageURL != nil {
		if err := s.fileStore.Delete(*event.ImageURL); err != nil {
			logger.Error().Err(err).Str("path", *event.ImageURL).Msg("Failed to remove event image")
		}
	}

	logger.Info().Int64("event_id", id).Msg("Event deleted")
	return nil
}

func (s *EventService) validateForm(form *dto.EventForm, event *models.Event) error {
	err := formflow.New().
		Require([]formflow.Field{
			{Name: "Title", Value: form.Title},
			{Name: "Date", Value: form.Date},
			{Name: "Description", Value: form.Description},
		}).
		Check(func() error {
			date, err := validation.ParseDate(form.Date)
			if err != nil {
				return apperrors.NewValidationError("Date", "Invalid date. Use YYYY-MM-DD.")
			}
			event.Date = date
			return nil
		}).
		Run()
	if err != nil {
		return err
	}

	event.Title = form.Title
	event.Description = form.Description
	return nil
}
