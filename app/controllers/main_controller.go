package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yamamoto-dev/pointbox/internal/pkg/env"
)

// HandleHome renders the login page. Sign-in happens in the browser
// against the auth service; the server only hands over its address.
func HandleHome(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"AuthURL":     env.GetEnv("AUTH_URL", ""),
		"AuthAnonKey": env.GetEnv("AUTH_ANON_KEY", ""),
	})
}

// HandleDashboard renders the dashboard shell. All data loading happens
// client-side through the JSON API with the stored access token; the
// page script redirects to the login page when no session exists.
func HandleDashboard(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{
		"AuthURL":     env.GetEnv("AUTH_URL", ""),
		"AuthAnonKey": env.GetEnv("AUTH_ANON_KEY", ""),
	})
}
