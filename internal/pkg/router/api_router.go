package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/joegirolamo/obsidian-sub002/app/controllers"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")
	v1.Post("/businesses/:id/brain", middleware.RequireAdmin, controllers.HandleGenerateInsight)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
