package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUploadHeader builds a real multipart.FileHeader carrying content, the
// way gin would hand it to a controller.
func newUploadHeader(t *testing.T, fieldName, fileName, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File[fieldName][0]
}

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	storage.now = func() time.Time {
		return time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)
	}
	return storage
}

func TestAllowed(t *testing.T) {
	storage := newTestStorage(t)

	for _, name := range []string{"a.png", "b.JPG", "c.jpeg", "d.gif", "e.pdf", "f.doc", "g.docx"} {
		assert.True(t, storage.Allowed(name), name)
	}
	for _, name := range []string{"a.exe", "b.sh", "noext", "c.pdf.exe"} {
		assert.False(t, storage.Allowed(name), name)
	}
}

func TestSaveWritesTimestampedFile(t *testing.T) {
	storage := newTestStorage(t)
	fh := newUploadHeader(t, "photo", "my photo.png", "image-bytes")

	relPath, err := storage.Save(fh, CategoryAdmissions, "photo")
	require.NoError(t, err)
	assert.Equal(t, "admissions/photo_20250601_103000_my_photo.png", relPath)

	content, err := os.ReadFile(filepath.Join(storage.BasePath(), filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	storage := newTestStorage(t)
	fh := newUploadHeader(t, "file", "payload.exe", "bin")

	_, err := storage.Save(fh, CategoryAdmissions, "document")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
}

func TestSaveSanitizesFilename(t *testing.T) {
	storage := newTestStorage(t)
	fh := newUploadHeader(t, "file", "../..//weird name!!.pdf", "doc")

	relPath, err := storage.Save(fh, CategoryCourses, "course")
	require.NoError(t, err)
	assert.NotContains(t, relPath, "..")
	assert.NotContains(t, relPath, "!")
	assert.NotContains(t, relPath, " ")
}

func TestDelete(t *testing.T) {
	storage := newTestStorage(t)
	fh := newUploadHeader(t, "file", "note.pdf", "doc")

	relPath, err := storage.Save(fh, CategoryEvents, "event")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(relPath))
	_, err = os.Stat(filepath.Join(storage.BasePath(), filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error.
	assert.NoError(t, storage.Delete(relPath))
	assert.NoError(t, storage.Delete(""))
}

func TestDeleteRejectsEscapingPaths(t *testing.T) {
	storage := newTestStorage(t)

	assert.Error(t, storage.Delete("../outside.txt"))
	assert.Error(t, storage.Delete("/etc/passwd"))
}
