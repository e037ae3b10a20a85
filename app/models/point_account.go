package models

import (
	"time"
)

// PointAccount is the per-user, per-provider tracking record. The
// (user_id, provider) pair is unique; accounts are created by the
// provisioning step and never deleted through the API.
type PointAccount struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_provider" json:"user_id"`
	Provider  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_provider" json:"provider"`
	Nickname  string    `gorm:"type:varchar(255);not null" json:"nickname"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
