package models

import (
	"time"
)

// PointSnapshot is one point-balance observation. Rows are append-only;
// captured_at is assigned by the database, so two inserts in the same
// instant can share a timestamp and the id is the tie-breaker.
type PointSnapshot struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	AccountID  uint64    `gorm:"not null;index" json:"account_id"`
	Points     int64     `gorm:"not null" json:"points"`
	Note       *string   `gorm:"type:text" json:"note"`
	CapturedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"captured_at"`
}
