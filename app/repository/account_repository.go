package repository

import (
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
)

// accountRepository implements the AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// GetByUserAndProvider resolves the single account for a (user, provider)
// pair. Returns gorm.ErrRecordNotFound when provisioning has not created
// one yet.
func (r *accountRepository) GetByUserAndProvider(userID, provider string) (*models.PointAccount, error) {
	var account models.PointAccount
	err := r.db.Where("user_id = ? AND provider = ?", userID, provider).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// EnsureExists inserts an account for (user, provider) unless one is
// already there. The duplicate insert is suppressed, not surfaced, which
// keeps provisioning idempotent.
func (r *accountRepository) EnsureExists(userID, provider, nickname string) error {
	return r.db.Exec(
		"INSERT IGNORE INTO point_accounts (user_id, provider, nickname) VALUES (?, ?, ?)",
		userID, provider, nickname,
	).Error
}
