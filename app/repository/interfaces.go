package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
)

// ProfileRepository defines the interface for profile-related database operations
type ProfileRepository interface {
	Upsert(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
}

// ProviderRepository defines the interface for point-provider operations
type ProviderRepository interface {
	GetAll() ([]models.PointProvider, error)
	GetByCode(code string) (*models.PointProvider, error)
	CodeExists(code string) (bool, error)
	Upsert(code, name string) error
}

// AccountRepository defines the interface for point-account operations
type AccountRepository interface {
	GetByUserAndProvider(userID, provider string) (*models.PointAccount, error)
	EnsureExists(userID, provider, nickname string) error
}

// SnapshotRepository defines the interface for the append-only snapshot ledger
type SnapshotRepository interface {
	Create(accountID uint64, points float64, note *string) error
	LatestByUser(userID string) ([]LatestBalance, error)
	HistoryByAccount(accountID uint64, limit int) ([]models.PointSnapshot, error)
}

// MemoRepository defines the interface for memo operations
type MemoRepository interface {
	Create(memo *models.Memo) error
	ListByUser(userID string, limit int) ([]models.Memo, error)
	DeleteByIDAndUser(id uint64, userID string) error
}

// LatestBalance is one row of the latest-per-account view. Balance
// fields are nil for accounts without any snapshot yet.
type LatestBalance struct {
	AccountID  uint64     `json:"account_id"`
	Provider   string     `json:"provider"`
	Nickname   string     `json:"nickname"`
	Points     *int64     `json:"points"`
	CapturedAt *time.Time `json:"captured_at"`
	Note       *string    `json:"note"`
}

// Repositories struct holds all repository instances
type Repositories struct {
	Profile  ProfileRepository
	Provider ProviderRepository
	Account  AccountRepository
	Snapshot SnapshotRepository
	Memo     MemoRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Profile:  NewProfileRepository(db),
		Provider: NewProviderRepository(db),
		Account:  NewAccountRepository(db),
		Snapshot: NewSnapshotRepository(db),
		Memo:     NewMemoRepository(db),
	}
}
