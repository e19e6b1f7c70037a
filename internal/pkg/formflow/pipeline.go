// Package formflow is the shared form-submission pipeline used by every
// mutating form route: a required-field check, an ordered validator chain, a
// file-persister that can undo its writes, and finally the repository write
// performed by the caller.
package formflow

import (
	"fmt"
	"mime/multipart"

	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/filestorage"
	"github.com/nasheeman/portal/internal/pkg/logger"
)

// Field pairs a user-facing field name with its submitted value.
type Field struct {
	Name  string
	Value string
}

// Pipeline runs validation checks in order, short-circuiting on the first
// failure. Checks run strictly before any file is written.
type Pipeline struct {
	checks []func() error
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Require appends a required-field check. Fields whose name appears in the
// exempt list may be empty.
func (p *Pipeline) Require(fields []Field, exempt ...string) *Pipeline {
	exemptSet := make(map[string]bool, len(exempt))
	for _, name := range exempt {
		exemptSet[name] = true
	}
	p.checks = append(p.checks, func() error {
		for _, f := range fields {
			if f.Value == "" && !exemptSet[f.Name] {
				return apperrors.NewValidationError(f.Name, fmt.Sprintf("%s is required.", f.Name))
			}
		}
		return nil
	})
	return p
}

// Check appends an arbitrary validation step.
func (p *Pipeline) Check(fn func() error) *Pipeline {
	p.checks = append(p.checks, fn)
	return p
}

// Run executes all checks in order and returns the first failure.
func (p *Pipeline) Run() error {
	for _, check := range p.checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// FileSaver stages uploads through a FileStore and remembers what it wrote so
// a failed submission can remove its files again.
type FileSaver struct {
	store filestorage.FileStore
	saved []string
}

// NewFileSaver creates a FileSaver backed by the given store.
func NewFileSaver(store filestorage.FileStore) *FileSaver {
	return &FileSaver{store: store}
}

// CheckAllowed validates the extensions of every present file before any of
// them is written. Nil headers are skipped.
func (s *FileSaver) CheckAllowed(fileHeaders ...*multipart.FileHeader) error {
	for _, fh := range fileHeaders {
		if fh == nil || fh.Filename == "" {
			continue
		}
		if !s.store.Allowed(fh.Filename) {
			return apperrors.NewCustomError(apperrors.ErrFileTypeNotAllowed,
				fmt.Sprintf("Invalid file type for %s. Allowed types: png, jpg, jpeg, gif, pdf, doc, docx", fh.Filename))
		}
	}
	return nil
}

// Save writes one upload and records its stored path. A nil header is a no-op
// returning an empty path.
func (s *FileSaver) Save(fh *multipart.FileHeader, category, prefix string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	path, err := s.store.Save(fh, category, prefix)
	if err != nil {
		return "", err
	}
	s.saved = append(s.saved, path)
	return path, nil
}

// SaveAll writes a batch of uploads, recording each stored path.
func (s *FileSaver) SaveAll(fileHeaders []*multipart.FileHeader, category, prefix string) ([]string, error) {
	paths := make([]string, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		path, err := s.Save(fh, category, prefix)
		if err != nil {
			return nil, err
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Rollback removes every file this saver wrote. Best effort: deletion
// failures are logged and do not stop the remaining removals.
func (s *FileSaver) Rollback() {
	for _, path := range s.saved {
		if err := s.store.Delete(path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to remove file during rollback")
		}
	}
	s.saved = nil
}
