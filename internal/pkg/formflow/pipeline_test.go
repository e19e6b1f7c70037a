package formflow

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	saved    []string
	deleted  []string
	failSave bool
}

func (f *fakeStore) Save(fh *multipart.FileHeader, category, prefix string) (string, error) {
	if f.failSave {
		return "", errors.New("disk full")
	}
	path := fmt.Sprintf("%s/%s_%s", category, prefix, fh.Filename)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStore) Delete(relPath string) error {
	f.deleted = append(f.deleted, relPath)
	return nil
}

func (f *fakeStore) Allowed(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

func TestPipelineRequire(t *testing.T) {
	err := New().
		Require([]Field{
			{Name: "Name", Value: "Ali"},
			{Name: "Course", Value: ""},
		}).
		Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Course")

	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "Course", customErr.Field)
}

func TestPipelineRequireExempt(t *testing.T) {
	err := New().
		Require([]Field{
			{Name: "Name", Value: "Ali"},
			{Name: "Comments", Value: ""},
		}, "Comments").
		Run()
	assert.NoError(t, err)
}

func TestPipelineShortCircuits(t *testing.T) {
	secondRan := false
	err := New().
		Check(func() error { return errors.New("first failed") }).
		Check(func() error {
			secondRan = true
			return nil
		}).
		Run()
	require.Error(t, err)
	assert.False(t, secondRan)
}

func TestPipelineRunsChecksInOrder(t *testing.T) {
	var order []int
	err := New().
		Check(func() error { order = append(order, 1); return nil }).
		Check(func() error { order = append(order, 2); return nil }).
		Run()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestFileSaverCheckAllowed(t *testing.T) {
	saver := NewFileSaver(&fakeStore{})

	err := saver.CheckAllowed(
		&multipart.FileHeader{Filename: "photo.png"},
		nil,
		&multipart.FileHeader{Filename: "doc.pdf"},
	)
	assert.NoError(t, err)

	err = saver.CheckAllowed(&multipart.FileHeader{Filename: "script.exe"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
}

func TestFileSaverRollbackRemovesSavedFiles(t *testing.T) {
	store := &fakeStore{}
	saver := NewFileSaver(store)

	_, err := saver.Save(&multipart.FileHeader{Filename: "a.pdf"}, "admissions", "document")
	require.NoError(t, err)
	_, err = saver.Save(&multipart.FileHeader{Filename: "b.pdf"}, "admissions", "document")
	require.NoError(t, err)

	saver.Rollback()
	assert.ElementsMatch(t, store.saved, store.deleted)
}

func TestFileSaverSkipsNilHeaders(t *testing.T) {
	store := &fakeStore{}
	saver := NewFileSaver(store)

	path, err := saver.Save(nil, "admissions", "photo")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Empty(t, store.saved)
}

func TestFileSaverSaveAll(t *testing.T) {
	store := &fakeStore{}
	saver := NewFileSaver(store)

	paths, err := saver.SaveAll([]*multipart.FileHeader{
		{Filename: "a.pdf"},
		{Filename: "b.doc"},
	}, "admissions", "document")
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	assert.Equal(t, store.saved, paths)
}
