package repository

import (
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
)

// snapshotRepository implements the SnapshotRepository interface
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Create appends one balance observation. captured_at is assigned by the
// database. Points arrive as the raw JSON number; the column coerces it,
// matching the deliberately permissive validation (finiteness only).
func (r *snapshotRepository) Create(accountID uint64, points float64, note *string) error {
	return r.db.Exec(
		"INSERT INTO point_snapshots (account_id, points, note) VALUES (?, ?, ?)",
		accountID, points, note,
	).Error
}

// LatestByUser returns one row per account of the user, joined with its
// most recent snapshot. "Most recent" orders by captured_at and then id,
// because same-instant inserts share a timestamp. Accounts without
// snapshots come back with null balance fields.
func (r *snapshotRepository) LatestByUser(userID string) ([]LatestBalance, error) {
	var rows []LatestBalance
	err := r.db.Raw(`
		SELECT
			a.id AS account_id,
			a.provider,
			a.nickname,
			s.points,
			s.captured_at,
			s.note
		FROM point_accounts a
		LEFT JOIN point_snapshots s ON s.id = (
			SELECT ps.id
			FROM point_snapshots ps
			WHERE ps.account_id = a.id
			ORDER BY ps.captured_at DESC, ps.id DESC
			LIMIT 1
		)
		WHERE a.user_id = ?
		ORDER BY a.provider`,
		userID,
	).Scan(&rows).Error
	return rows, err
}

// HistoryByAccount returns the newest snapshots of one account, ordered
// by captured_at and then id descending (id disambiguates same-instant
// inserts).
func (r *snapshotRepository) HistoryByAccount(accountID uint64, limit int) ([]models.PointSnapshot, error) {
	var snapshots []models.PointSnapshot
	err := r.db.Raw(
		"SELECT id, points, captured_at, note FROM point_snapshots WHERE account_id = ? ORDER BY captured_at DESC, id DESC LIMIT ?",
		accountID, limit,
	).Scan(&snapshots).Error
	return snapshots, err
}
