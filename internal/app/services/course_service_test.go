package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseStore struct {
	courses []*models.Course
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	course.ID = int64(len(f.courses) + 1)
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	return f.courses, nil
}

func (f *fakeCourseStore) GetByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.CourseID == courseID {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) Update(ctx context.Context, course *models.Course) error {
	for i, c := range f.courses {
		if c.CourseID == course.CourseID {
			f.courses[i] = course
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) Delete(ctx context.Context, courseID string) error {
	for i, c := range f.courses {
		if c.CourseID == courseID {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func validCourseForm() *dto.CourseForm {
	return &dto.CourseForm{
		Name:        "Basic Literacy",
		Description: "Reading and writing fundamentals",
		Duration:    "6 months",
		Level:       "Beginner",
	}
}

func TestCourseCreateAssignsPublicID(t *testing.T) {
	store := &fakeCourseStore{}
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	course, err := svc.Create(context.Background(), validCourseForm())
	require.NoError(t, err)
	assert.NotEmpty(t, course.CourseID)
	assert.Nil(t, course.ImageURL)
	assert.Len(t, store.courses, 1)
}

func TestCourseCreateMissingField(t *testing.T) {
	svc := NewCourseService(&fakeCourseStore{}, &fakeFileStore{})

	form := validCourseForm()
	form.Level = ""

	_, err := svc.Create(context.Background(), form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Level")
}

func TestCourseCreateWithImage(t *testing.T) {
	store := &fakeCourseStore{}
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	form := validCourseForm()
	form.Image = &multipart.FileHeader{Filename: "cover.png"}

	course, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	require.NotNil(t, course.ImageURL)
	assert.Len(t, files.saved, 1)
}

func TestCourseUpdateReplacesImage(t *testing.T) {
	store := &fakeCourseStore{}
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	form := validCourseForm()
	form.Image = &multipart.FileHeader{Filename: "old.png"}
	course, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	oldImage := *course.ImageURL

	update := validCourseForm()
	update.Image = &multipart.FileHeader{Filename: "new.png"}
	updated, err := svc.Update(context.Background(), course.CourseID, update)
	require.NoError(t, err)

	require.NotNil(t, updated.ImageURL)
	assert.NotEqual(t, oldImage, *updated.ImageURL)
	assert.Contains(t, files.deleted, oldImage)
}

func TestCourseUpdateKeepsImageWhenNoneUploaded(t *testing.T) {
	store := &fakeCourseStore{}
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	form := validCourseForm()
	form.Image = &multipart.FileHeader{Filename: "cover.png"}
	course, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), course.CourseID, validCourseForm())
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Empty(t, files.deleted)
}

func TestCourseDeleteRemovesImage(t *testing.T) {
	store := &fakeCourseStore{}
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	form := validCourseForm()
	form.Image = &multipart.FileHeader{Filename: "cover.png"}
	course, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), course.CourseID))
	assert.Empty(t, store.courses)
	assert.Len(t, files.deleted, 1)
}

func TestCourseDeleteWithoutImage(t *testing.T) {
	store := &fakeCourseStore{}
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	course, err := svc.Create(context.Background(), validCourseForm())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), course.CourseID))
	assert.Empty(t, store.courses)
	assert.Empty(t, files.deleted)
}

func TestCourseDeleteMissing(t *testing.T) {
	svc := NewCourseService(&fakeCourseStore{}, &fakeFileStore{})

	err := svc.Delete(context.Background(), "no-such-course")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
