package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/logger"
)

// allowedExtensions is the upload allow-list shared by every category.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// LocalStorage writes uploads to category subdirectories under a base path.
type LocalStorage struct {
	basePath string
	now      func() time.Time
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating it if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		now:      time.Now,
	}, nil
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// Allowed reports whether the filename carries an allowed extension.
func (ls *LocalStorage) Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// sanitizeFilename strips path components and unsafe characters from an
// uploaded filename, keeping only a safe base name.
func sanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}

// Save validates the extension, renames the upload with the category prefix
// and a second-resolution timestamp, and writes it under the category
// subdirectory. The returned path is relative to the storage root.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, category, prefix string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	if !ls.Allowed(fileHeader.Filename) {
		return "", apperrors.NewCustomError(apperrors.ErrFileTypeNotAllowed,
			fmt.Sprintf("Invalid file type for %s. Allowed types: png, jpg, jpeg, gif, pdf, doc, docx", fileHeader.Filename))
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(ls.basePath, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create category directory")
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}

	timestamp := ls.now().Format("20060102_150405")
	name := sanitizeFilename(fileHeader.Filename)
	if prefix != "" {
		name = fmt.Sprintf("%s_%s_%s", prefix, timestamp, name)
	} else {
		name = fmt.Sprintf("%s_%s", timestamp, name)
	}

	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join(category, name))
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// Delete removes a stored file by its relative path. Missing files and empty
// paths are treated as already deleted.
func (ls *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid file path: %s", relPath)
	}

	physicalPath := filepath.Join(ls.basePath, cleaned)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
