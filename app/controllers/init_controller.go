package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yamamoto-dev/pointbox/app/models"
	"github.com/yamamoto-dev/pointbox/app/repository"
	"github.com/yamamoto-dev/pointbox/internal/pkg/usercontext"
)

// InitController provisions the authenticated user: a profile row plus
// one point account per registered provider.
type InitController struct {
	profiles  repository.ProfileRepository
	providers repository.ProviderRepository
	accounts  repository.AccountRepository
}

// NewInitController creates a new init controller with repositories
func NewInitController(profiles repository.ProfileRepository, providers repository.ProviderRepository, accounts repository.AccountRepository) *InitController {
	return &InitController{
		profiles:  profiles,
		providers: providers,
		accounts:  accounts,
	}
}

// HandleInit upserts the profile and ensures an account per provider.
// Idempotent, the dashboard calls it on every load. The statements are
// not wrapped in a transaction; a crash mid-sequence leaves partial
// provisioning that the next call repairs.
func (ic *InitController) HandleInit(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	profile := &models.Profile{ID: uc.UserID, Email: uc.Email}
	if err := ic.profiles.Upsert(profile); err != nil {
		return internalError(c, "profile upsert failed", err)
	}

	providers, err := ic.providers.GetAll()
	if err != nil {
		return internalError(c, "provider list failed", err)
	}

	for _, p := range providers {
		// Nickname starts as the provider's current display name.
		if err := ic.accounts.EnsureExists(uc.UserID, p.Code, p.Name); err != nil {
			return internalError(c, "account provisioning failed", err)
		}
	}

	return c.JSON(fiber.Map{"ok": true})
}
