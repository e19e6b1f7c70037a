package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/filestorage"
	"github.com/nasheeman/portal/internal/pkg/formflow"
	"github.com/nasheeman/portal/internal/pkg/logger"
)

// courseStore is the persistence surface the course service needs.
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, courseID string) error
}

// CourseService manages the course catalog and its image lifecycle.
type CourseService struct {
	courseRepo courseStore
	fileStore  filestorage.FileStore
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo courseStore, fileStore filestorage.FileStore) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		fileStore:  fileStore,
	}
}

// List returns every course, newest first.
func (s *CourseService) List(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// Get returns one course by its public identifier.
func (s *CourseService) Get(ctx context.Context, courseID string) (*models.Course, error) {
	return s.courseRepo.GetByCourseID(ctx, courseID)
}

// Create validates the form, stores the optional image, and inserts the row.
func (s *CourseService) Create(ctx context.Context, form *dto.CourseForm) (*models.Course, error) {
	err := formflow.New().
		Require([]formflow.Field{
			{Name: "Name", Value: form.Name},
			{Name: "Description", Value: form.Description},
			{Name: "Duration", Value: form.Duration},
			{Name: "Level", Value: form.Level},
		}).
		Run()
	if err != nil {
		return nil, err
	}

	saver := formflow.NewFileSaver(s.fileStore)
	if err := saver.CheckAllowed(form.Image); err != nil {
		return nil, err
	}

	imagePath, err := saver.Save(form.Image, filestorage.CategoryCourses, "course")
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		CourseID:    uuid.New().String(),
		Name:        form.Name,
		Description: form.Description,
		Duration:    form.Duration,
		Level:       form.Level,
	}
	if imagePath != "" {
		course.ImageURL = &imagePath
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		saver.Rollback()
		return nil, err
	}

	logger.Info().Str("course_id", course.CourseID).Str("name", course.Name).Msg("Course created")
	return course, nil
}

// Update overwrites a course. A new image replaces and removes the old file.
func (s *CourseService) Update(ctx context.Context, courseID string, form *dto.CourseForm) (*models.Course, error) {
	course, err := s.courseRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	err = formflow.New().
		Require([]formflow.Field{
			{Name: "Name", Value: form.Name},
			{Name: "Description", Value: form.Description},
			{Name: "Duration", Value: form.Duration},
			{Name: "Level", Value: form.Level},
		}).
		Run()
	if err != nil {
		return nil, err
	}

	saver := formflow.NewFileSaver(s.fileStore)
	if err := saver.CheckAllowed(form.Image); err != nil {
		return nil, err
	}

	newImagePath, err := saver.Save(form.Image, filestorage.CategoryCourses, "course")
	if err != nil {
		return nil, err
	}

	oldImage := course.ImageURL
	course.Name = form.Name
	course.Description = form.Description
	course.Duration = form.Duration
	course.Level = form.Level
	if newImagePath != "" {
		course.ImageURL = &newImagePath
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		saver.Rollback()
		return nil, err
	}

	if newImagePath != "" && oldImage != nil {
		if err := s.fileStore.Delete(*oldImage); err != nil {
			logger.Error().Err(err).Str("path", *oldImage).Msg("Failed to remove replaced course image")
		}
	}

	logger.Info().Str("course_id", course.CourseID).Msg("Course updated")
	return course, nil
}

// Delete removes a course and its image file when one is stored.
func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	course, err := s.courseRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return err
	}

	if course.ImageURL != nil {
		if err := s.fileStore.Delete(*course.ImageURL); err != nil {
			logger.Error().Err(err).Str("path", *course.ImageURL).Msg("Failed to remove course image")
		}
	}

	logger.Info().Str("course_id", courseID).Msg("Course deleted")
	return nil
}
