package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/controllers"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/middleware"
)

func (h HttpRouter) registerPortalRoutes(app *fiber.App) {
	portalGroup := app.Group("/portal", middleware.RequireAuth)

	// Access code redemption does not require a prior portal grant
	portalGroup.Post("/verify-access-code", controllers.HandleVerifyAccessCode)
	portalGroup.Get("/", controllers.HandlePortalList)

	// Everything below needs a verified portal in the session
	member := portalGroup.Group("/businesses/:id", middleware.RequirePortalMember)
	member.Get("/", controllers.HandlePortalView)
	member.Post("/tools/:provider/request", controllers.HandlePortalRequestTool)
	member.Post("/intake/questions/:questionId/answer", controllers.HandleSubmitIntakeAnswer)
	member.Get("/intake/answers", controllers.HandleListIntakeAnswers)
}
