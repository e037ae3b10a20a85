package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PointProvider is a named loyalty-point scheme. The code is the unique
// machine-readable identifier and is immutable once chosen; only the
// display name can change via re-submission.
type PointProvider struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Code      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"code" validate:"required,min=1,max=100"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (p *PointProvider) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

func FindProviderByCode(db *gorm.DB, code string) (*PointProvider, error) {
	var provider PointProvider
	err := db.Where("code = ?", code).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}
