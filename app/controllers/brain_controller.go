package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/brain"
)

// HandleGenerateInsight asks the insight engine for an advisory summary built
// from the business's current scorecards, opportunities and metrics.
func HandleGenerateInsight(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req struct {
		Focus string `json:"focus"`
	}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	repos := repository.GetGlobalRepositories()

	scorecards, err := repos.Scorecard.GetByBusinessID(business.ID, false)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load scorecards")
	}
	opportunities, err := repos.Opportunity.GetByBusinessID(business.ID, false)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load opportunities")
	}
	metrics, err := repos.Metric.GetByBusinessID(business.ID, false)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}

	engine, err := brain.NewEngine(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "Insight engine is not configured")
	}

	insight, err := engine.GenerateInsight(c.Context(), business, scorecards, opportunities, metrics, req.Focus)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "Insight generation failed")
	}

	return c.JSON(insight)
}
