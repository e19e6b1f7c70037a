package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nasheeman/portal/internal/app/models"
)

// SiteInfoRepository handles database operations for site settings.
type SiteInfoRepository struct {
	db *pgxpool.Pool
}

// NewSiteInfoRepository creates a new site info repository
func NewSiteInfoRepository(db *pgxpool.Pool) *SiteInfoRepository {
	return &SiteInfoRepository{
		db: db,
	}
}

// GetAll returns every settings row keyed by name.
func (r *SiteInfoRepository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id, key, value FROM site_info ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("error listing site info: %w", err)
	}
	defer rows.Close()

	info := map[string]string{}
	for rows.Next() {
		var row models.SiteInfo
		if err := rows.Scan(&row.ID, &row.Key, &row.Value); err != nil {
			return nil, fmt.Errorf("error scanning site info: %w", err)
		}
		info[row.Key] = row.Value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating site info: %w", err)
	}

	return info, nil
}

// Upsert stores a settings value, overwriting any existing key.
func (r *SiteInfoRepository) Upsert(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO site_info (key, value)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT site_info_key_key
		DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("error upserting site info: %w", err)
	}

	return nil
}
