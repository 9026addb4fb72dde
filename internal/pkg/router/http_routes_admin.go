package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/controllers"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)
	adminGroup.Get("/clients", controllers.HandleAdminClients)
	adminGroup.Post("/portals/:portalId/active", controllers.HandleAdminSetPortalActive)
	adminGroup.Post("/grant-all-access", controllers.HandleAdminGrantAllAccess)
	adminGroup.Get("/audit-logs", controllers.HandleAdminAuditLogs)

	// Business workspaces
	adminGroup.Post("/businesses", controllers.HandleCreateBusiness)
	adminGroup.Get("/businesses", controllers.HandleListBusinesses)
	adminGroup.Get("/businesses/uuid/:uuid", controllers.HandleGetBusinessByUUID)

	biz := adminGroup.Group("/businesses/:id")
	biz.Get("/", controllers.HandleGetBusiness)
	biz.Put("/", controllers.HandleUpdateBusiness)
	biz.Delete("/", controllers.HandleDeleteBusiness)
	biz.Get("/leadsie-url", controllers.HandleGetLeadsieURL)
	biz.Post("/leadsie-url", controllers.HandleSetLeadsieURL)

	// Publish-state flow: whole domains go live or dark at once
	biz.Post("/:domain/publish", controllers.HandleDomainPublish)
	biz.Post("/:domain/unpublish", controllers.HandleDomainUnpublish)
	biz.Get("/publish-status", controllers.HandlePublishStatus)

	// Scorecards and highlights
	biz.Get("/scorecards", controllers.HandleListScorecards)
	biz.Put("/scorecards", controllers.HandleUpsertScorecard)
	biz.Post("/scorecards/:category/highlights", controllers.HandleAddHighlight)
	biz.Put("/scorecards/:category/highlights/:highlightId", controllers.HandleUpdateHighlight)
	biz.Delete("/scorecards/:category/highlights/:highlightId", controllers.HandleDeleteHighlight)

	// Opportunities
	biz.Get("/opportunities", controllers.HandleListOpportunities)
	biz.Post("/opportunities", controllers.HandleCreateOpportunity)
	biz.Put("/opportunities/:oppId", controllers.HandleUpdateOpportunity)
	biz.Delete("/opportunities/:oppId", controllers.HandleDeleteOpportunity)

	// Assessments
	biz.Get("/assessments", controllers.HandleListAssessments)
	biz.Put("/assessments", controllers.HandleUpsertAssessment)
	biz.Delete("/assessments/:assessmentId", controllers.HandleDeleteAssessment)

	// Metrics
	biz.Get("/metrics", controllers.HandleListMetrics)
	biz.Put("/metrics", controllers.HandleUpsertMetric)
	biz.Delete("/metrics/:metricId", controllers.HandleDeleteMetric)
	biz.Post("/metrics/sync", controllers.HandleSyncMetrics)

	// Tool request state
	biz.Post("/tools/:provider/status", controllers.HandleAdminSetToolStatus)

	// Intake questionnaire
	biz.Get("/intake/questions", controllers.HandleListIntakeQuestions)
	biz.Post("/intake/questions", controllers.HandleCreateIntakeQuestion)
	biz.Put("/intake/questions/:questionId", controllers.HandleUpdateIntakeQuestion)
	biz.Delete("/intake/questions/:questionId", controllers.HandleDeleteIntakeQuestion)
	biz.Get("/intake/answers/:clientId", controllers.HandleListIntakeAnswers)
}
