package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
	"github.com/yamamoto-dev/pointbox/app/repository"
	"github.com/yamamoto-dev/pointbox/internal/pkg/usercontext"
)

// In-memory repository fakes. Controllers only see the repository
// interfaces, so tests run without a database.

type fakeProfileRepo struct {
	upserts  []models.Profile
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.Profile{}}
}

func (f *fakeProfileRepo) Upsert(p *models.Profile) error {
	f.upserts = append(f.upserts, *p)
	f.profiles[p.ID] = &models.Profile{ID: p.ID, Email: p.Email}
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProviderRepo struct {
	providers []models.PointProvider
}

func (f *fakeProviderRepo) GetAll() ([]models.PointProvider, error) {
	return f.providers, nil
}

func (f *fakeProviderRepo) GetByCode(code string) (*models.PointProvider, error) {
	for i := range f.providers {
		if f.providers[i].Code == code {
			return &f.providers[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProviderRepo) CodeExists(code string) (bool, error) {
	for _, p := range f.providers {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProviderRepo) Upsert(code, name string) error {
	for i := range f.providers {
		if f.providers[i].Code == code {
			f.providers[i].Name = name
			return nil
		}
	}
	f.providers = append(f.providers, models.PointProvider{
		ID:   uint(len(f.providers) + 1),
		Code: code,
		Name: name,
	})
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*models.PointAccount
	nextID   uint64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*models.PointAccount{}}
}

func accountKey(userID, provider string) string {
	return fmt.Sprintf("%s|%s", userID, provider)
}

func (f *fakeAccountRepo) GetByUserAndProvider(userID, provider string) (*models.PointAccount, error) {
	if a, ok := f.accounts[accountKey(userID, provider)]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) EnsureExists(userID, provider, nickname string) error {
	key := accountKey(userID, provider)
	if _, ok := f.accounts[key]; ok {
		return nil
	}
	f.nextID++
	f.accounts[key] = &models.PointAccount{
		ID:       f.nextID,
		UserID:   userID,
		Provider: provider,
		Nickname: nickname,
	}
	return nil
}

type snapshotInsert struct {
	accountID uint64
	points    float64
	note      *string
}

type fakeSnapshotRepo struct {
	inserts []snapshotInsert
	latest  []repository.LatestBalance
	history []models.PointSnapshot
}

func (f *fakeSnapshotRepo) Create(accountID uint64, points float64, note *string) error {
	f.inserts = append(f.inserts, snapshotInsert{accountID: accountID, points: points, note: note})
	return nil
}

func (f *fakeSnapshotRepo) LatestByUser(userID string) ([]repository.LatestBalance, error) {
	return f.latest, nil
}

func (f *fakeSnapshotRepo) HistoryByAccount(accountID uint64, limit int) ([]models.PointSnapshot, error) {
	if len(f.history) > limit {
		return f.history[:limit], nil
	}
	return f.history, nil
}

type fakeMemoRepo struct {
	memos  []models.Memo
	nextID uint64
}

func (f *fakeMemoRepo) Create(m *models.Memo) error {
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	f.memos = append([]models.Memo{*m}, f.memos...)
	return nil
}

func (f *fakeMemoRepo) ListByUser(userID string, limit int) ([]models.Memo, error) {
	var out []models.Memo
	for _, m := range f.memos {
		if m.UserID == userID {
			out = append(out, m)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMemoRepo) DeleteByIDAndUser(id uint64, userID string) error {
	for i, m := range f.memos {
		if m.ID == id && m.UserID == userID {
			f.memos = append(f.memos[:i], f.memos[i+1:]...)
			return nil
		}
	}
	return nil
}

// asUser injects a verified user context, standing in for the bearer
// middleware which has its own tests.
func asUser(userID string, email *string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(usercontext.Key, usercontext.UserContext{
			UserID:     userID,
			Email:      email,
			IsLoggedIn: true,
		})
		return c.Next()
	}
}
