package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yamamoto-dev/pointbox/app/controllers"
	"github.com/yamamoto-dev/pointbox/internal/pkg/constants"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Login surface and dashboard shell. Session checks and redirects
	// happen in the page scripts, the server renders the shells only.
	app.Get(constants.PublicRoute, controllers.HandleHome)
	app.Get(constants.DashboardRoute, controllers.HandleDashboard)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
