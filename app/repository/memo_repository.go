package repository

import (
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
)

// memoRepository implements the MemoRepository interface
type memoRepository struct {
	db *gorm.DB
}

// NewMemoRepository creates a new memo repository instance
func NewMemoRepository(db *gorm.DB) MemoRepository {
	return &memoRepository{db: db}
}

// Create creates a new memo in the database
func (r *memoRepository) Create(memo *models.Memo) error {
	return r.db.Create(memo).Error
}

// ListByUser returns the user's newest memos, capped at limit
func (r *memoRepository) ListByUser(userID string, limit int) ([]models.Memo, error) {
	var memos []models.Memo
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&memos).Error
	return memos, err
}

// DeleteByIDAndUser deletes a memo only when it belongs to the user.
// Deleting someone else's memo (or a missing id) is a silent no-op.
func (r *memoRepository) DeleteByIDAndUser(id uint64, userID string) error {
	return r.db.Exec("DELETE FROM memos WHERE id = ? AND user_id = ?", id, userID).Error
}
