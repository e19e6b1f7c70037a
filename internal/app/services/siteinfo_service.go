package services

import (
	"context"
	"strings"

	"github.com/nasheeman/portal/internal/pkg/apperrors"
)

// siteInfoStore is the persistence surface the site info service needs.
type siteInfoStore interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}

// SiteInfoService reads and updates the key/value site settings shown on the
// public pages (contact details, office hours, social links).
type SiteInfoService struct {
	siteInfoRepo siteInfoStore
}

// NewSiteInfoService creates a new site info service
func NewSiteInfoService(siteInfoRepo siteInfoStore) *SiteInfoService {
	return &SiteInfoService{
		siteInfoRepo: siteInfoRepo,
	}
}

// List returns every settings entry keyed by name.
func (s *SiteInfoService) List(ctx context.Context) (map[string]string, error) {
	return s.siteInfoRepo.GetAll(ctx)
}

// Update upserts the given settings entries. Keys are trimmed; an empty set
// or a blank key is rejected. All keys are validated before the first write
// so a bad batch changes nothing.
func (s *SiteInfoService) Update(ctx context.Context, values map[string]string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, apperrors.NewBadRequestError("No settings given.")
	}

	trimmed := make(map[string]string, len(values))
	for key, value := range values {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, apperrors.NewBadRequestError("Setting keys must not be empty.")
		}
		trimmed[key] = value
	}

	for key, value := range trimmed {
		if err := s.siteInfoRepo.Upsert(ctx, key, value); err != nil {
			return nil, err
		}
	}

	return s.siteInfoRepo.GetAll(ctx)
}
