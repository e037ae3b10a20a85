package repository

import (
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
)

// providerRepository implements the ProviderRepository interface
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository creates a new provider repository instance
func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

// GetAll returns every provider in creation order (insertion id ascending)
func (r *providerRepository) GetAll() ([]models.PointProvider, error) {
	var providers []models.PointProvider
	err := r.db.Order("id ASC").Find(&providers).Error
	return providers, err
}

// GetByCode retrieves a provider by its unique code
func (r *providerRepository) GetByCode(code string) (*models.PointProvider, error) {
	var provider models.PointProvider
	err := r.db.Where("code = ?", code).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// CodeExists reports whether a provider with the given code is registered
func (r *providerRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.PointProvider{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// Upsert inserts the provider or updates the display name when the code
// already exists. The code itself is immutable; this is also what makes
// the check-then-insert race on auto-derived codes coalesce instead of
// failing.
func (r *providerRepository) Upsert(code, name string) error {
	return r.db.Exec(
		"INSERT INTO point_providers (code, name) VALUES (?, ?) ON DUPLICATE KEY UPDATE name = VALUES(name)",
		code, name,
	).Error
}
