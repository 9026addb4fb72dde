package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/controllers"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Account lifecycle
	app.Post("/register", controllers.HandleRegister)
	app.Post("/login", controllers.HandleLogin)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)
	app.Get("/me", middleware.RequireAuth, controllers.HandleMe)

	// Social OAuth connect flow; state carries the business access code
	app.Get("/auth/:provider", controllers.HandleOAuthBegin)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
	app.Post("/auth/logout", controllers.HandleOAuthLogout)
}
