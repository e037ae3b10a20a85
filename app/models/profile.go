package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Profile mirrors an identity-provider user into the local database.
// The ID is the subject issued by the identity provider (a UUID), not
// an autoincrement. Profiles are created by upsert on first request.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id" validate:"required,uuid"`
	Email     *string   `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Profile) Validate() error {
	v := validator.New()
	return v.Struct(p)
}
