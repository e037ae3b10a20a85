package repository

import (
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert inserts the profile or, when the id already exists, overwrites
// the stored email with the one the identity provider reported.
func (r *profileRepository) Upsert(profile *models.Profile) error {
	return r.db.Exec(
		"INSERT INTO profiles (id, email) VALUES (?, ?) ON DUPLICATE KEY UPDATE email = VALUES(email)",
		profile.ID, profile.Email,
	).Error
}

// GetByID retrieves a profile by its identity-provider subject
func (r *profileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
