package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/yamamoto-dev/pointbox/app/controllers"
	"github.com/yamamoto-dev/pointbox/app/repository"
	"github.com/yamamoto-dev/pointbox/internal/pkg/constants"
	"github.com/yamamoto-dev/pointbox/internal/pkg/identity"
	"github.com/yamamoto-dev/pointbox/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()
	verifier := identity.NewClientFromEnv()

	initCtrl := controllers.NewInitController(repos.Profile, repos.Provider, repos.Account)
	providerCtrl := controllers.NewProviderController(repos.Provider)
	pointsCtrl := controllers.NewPointsController(repos.Provider, repos.Account, repos.Snapshot)
	memoCtrl := controllers.NewMemoController(repos.Memo)

	api := app.Group(constants.APIRoute, limiter.New(), middleware.BearerAuth(verifier))

	api.Post("/init", initCtrl.HandleInit)

	api.Get("/providers", providerCtrl.HandleList)
	api.Post("/providers", providerCtrl.HandleCreate)

	api.Post("/points/add", pointsCtrl.HandleAdd)
	api.Get("/points/latest", pointsCtrl.HandleLatest)
	api.Get("/points/history", pointsCtrl.HandleHistory)

	api.Get("/memos", memoCtrl.HandleList)
	api.Post("/memos", memoCtrl.HandleCreate)
	api.Delete("/memos/:id", memoCtrl.HandleDelete)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
