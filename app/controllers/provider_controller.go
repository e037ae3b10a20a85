package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yamamoto-dev/pointbox/app/models"
	"github.com/yamamoto-dev/pointbox/app/repository"
	"github.com/yamamoto-dev/pointbox/internal/pkg/slug"
)

// ProviderController handles the point-provider registry. Providers are
// created (or renamed via code re-submission) but never deleted.
type ProviderController struct {
	providers repository.ProviderRepository
}

// NewProviderController creates a new provider controller with repository
func NewProviderController(providers repository.ProviderRepository) *ProviderController {
	return &ProviderController{providers: providers}
}

type providerItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// HandleList returns all providers in creation order.
func (pc *ProviderController) HandleList(c *fiber.Ctx) error {
	providers, err := pc.providers.GetAll()
	if err != nil {
		return internalError(c, "provider list failed", err)
	}

	items := make([]providerItem, 0, len(providers))
	for _, p := range providers {
		items = append(items, providerItem{Code: p.Code, Name: p.Name})
	}
	return c.JSON(fiber.Map{"items": items})
}

type createProviderRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// HandleCreate registers a provider. Without an explicit code one is
// derived from the name and disambiguated with _2, _3 suffixes. The
// existence check and the insert are separate statements, so two
// concurrent creations with the same name can race to one candidate;
// the unique key plus the name-only upsert make the loser coalesce
// instead of fail.
func (pc *ProviderController) HandleCreate(c *fiber.Ctx) error {
	var req createProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Bad request")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return jsonError(c, fiber.StatusBadRequest, "Bad request")
	}

	code := strings.ToLower(strings.TrimSpace(req.Code))
	if code == "" {
		derived, err := pc.deriveCode(name)
		if err != nil {
			return internalError(c, "code derivation failed", err)
		}
		code = derived
	}

	if !slug.IsValid(code) {
		return jsonError(c, fiber.StatusBadRequest, "invalid code")
	}

	provider := &models.PointProvider{Code: code, Name: name}
	if err := provider.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Bad request")
	}

	if err := pc.providers.Upsert(code, name); err != nil {
		return internalError(c, "provider upsert failed", err)
	}

	// The final code goes back so the UI can auto-select the new entry.
	return c.JSON(fiber.Map{"ok": true, "code": code})
}

// deriveCode picks the first unused candidate among base, base_2, base_3…
func (pc *ProviderController) deriveCode(name string) (string, error) {
	base := slug.Base(name)

	candidate := base
	for n := 1; ; n++ {
		if n > 1 {
			candidate = fmt.Sprintf("%s_%d", base, n)
		}
		exists, err := pc.providers.CodeExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
