package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Memo is a free-form note owned by a user, independent of any
// point account.
type Memo struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"-"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *Memo) Validate() error {
	v := validator.New()
	return v.Struct(m)
}
