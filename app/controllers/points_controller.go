package controllers

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/repository"
	"github.com/yamamoto-dev/pointbox/internal/pkg/usercontext"
)

const historyLimit = 10

// PointsController handles the snapshot ledger: appending balance
// observations and the latest/history read paths.
type PointsController struct {
	providers repository.ProviderRepository
	accounts  repository.AccountRepository
	snapshots repository.SnapshotRepository
}

// NewPointsController creates a new points controller with repositories
func NewPointsController(providers repository.ProviderRepository, accounts repository.AccountRepository, snapshots repository.SnapshotRepository) *PointsController {
	return &PointsController{
		providers: providers,
		accounts:  accounts,
		snapshots: snapshots,
	}
}

type addPointsRequest struct {
	Provider string   `json:"provider"`
	Points   *float64 `json:"points"`
	Note     *string  `json:"note"`
}

// HandleAdd appends one snapshot for the user's account with the given
// provider. Only finiteness of the point value is enforced; negatives
// and decimals pass through on purpose.
func (pc *PointsController) HandleAdd(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	var req addPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Bad request")
	}

	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if provider == "" || req.Points == nil || math.IsNaN(*req.Points) || math.IsInf(*req.Points, 0) {
		return jsonError(c, fiber.StatusBadRequest, "Bad request")
	}

	registered, err := pc.providers.CodeExists(provider)
	if err != nil {
		return internalError(c, "provider check failed", err)
	}
	if !registered {
		return jsonError(c, fiber.StatusBadRequest, "Bad request")
	}

	account, err := pc.accounts.GetByUserAndProvider(uc.UserID, provider)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Registered provider, but /api/init has not provisioned
			// this user's account yet.
			return jsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return internalError(c, "account lookup failed", err)
	}

	if err := pc.snapshots.Create(account.ID, *req.Points, req.Note); err != nil {
		return internalError(c, "snapshot insert failed", err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// HandleLatest returns one row per account of the user, each with its
// most recent snapshot (or null balance fields when there is none).
func (pc *PointsController) HandleLatest(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	items, err := pc.snapshots.LatestByUser(uc.UserID)
	if err != nil {
		return internalError(c, "latest query failed", err)
	}
	if items == nil {
		items = []repository.LatestBalance{}
	}
	return c.JSON(fiber.Map{"items": items})
}

type historyItem struct {
	ID         uint64    `json:"id"`
	Points     int64     `json:"points"`
	CapturedAt time.Time `json:"captured_at"`
	Note       *string   `json:"note"`
}

// HandleHistory returns the newest snapshots for one provider. An
// unregistered code is a 400; a registered code without an account for
// this user returns empty items.
func (pc *PointsController) HandleHistory(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	provider := strings.ToLower(strings.TrimSpace(c.Query("provider")))
	if provider == "" {
		return jsonError(c, fiber.StatusBadRequest, "Bad provider")
	}

	registered, err := pc.providers.CodeExists(provider)
	if err != nil {
		return internalError(c, "provider check failed", err)
	}
	if !registered {
		return jsonError(c, fiber.StatusBadRequest, "Bad provider")
	}

	account, err := pc.accounts.GetByUserAndProvider(uc.UserID, provider)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"items": []historyItem{}})
		}
		return internalError(c, "account lookup failed", err)
	}

	snapshots, err := pc.snapshots.HistoryByAccount(account.ID, historyLimit)
	if err != nil {
		return internalError(c, "history query failed", err)
	}

	items := make([]historyItem, 0, len(snapshots))
	for _, s := range snapshots {
		items = append(items, historyItem{
			ID:         s.ID,
			Points:     s.Points,
			CapturedAt: s.CapturedAt,
			Note:       s.Note,
		})
	}
	return c.JSON(fiber.Map{"items": items})
}
