package filestorage

import (
	"mime/multipart"
)

// Upload categories map to subdirectories under the storage root.
const (
	CategoryEvents     = "events"
	CategoryCourses    = "courses"
	CategoryAdmissions = "admissions"
	CategoryPopups     = "popups"
)

// FileStore defines the interface for upload storage operations.
// Stored paths are relative to the storage root, e.g. "courses/course_20250101_120000_intro.png".
type FileStore interface {
	// Save validates the file extension and writes the upload into the
	// category subdirectory, returning the stored relative path.
	Save(fileHeader *multipart.FileHeader, category, prefix string) (string, error)

	// Delete removes a stored file by its relative path. Deleting a missing
	// file is not an error.
	Delete(relPath string) error

	// Allowed reports whether the filename has an allowed extension.
	Allowed(filename string) bool
}
