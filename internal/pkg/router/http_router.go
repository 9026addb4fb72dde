package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/controllers"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/database"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/middleware"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/oauth"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Wire struct-based controllers with repositories and services
	repository.InitializeFactory(database.GetDB())
	controllers.InitializeControllers()

	h.registerPublicRoutes(app)
	h.registerPortalRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
