package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
)

type scorecardScoreRequest struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

type highlightRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HandleListScorecards returns the business scorecards with their highlights.
func HandleListScorecards(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	cards, err := repository.GetGlobalRepositories().Scorecard.GetByBusinessID(business.ID, false)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load scorecards")
	}

	return c.JSON(fiber.Map{"scorecards": cards})
}

// HandleUpsertScorecard sets the score for one category, creating the card row
// if it does not exist yet.
func HandleUpsertScorecard(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req scorecardScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !models.IsValidScorecardCategory(req.Category) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown scorecard category")
	}

	repos := repository.GetGlobalRepositories()
	card, err := repos.Scorecard.GetOrCreate(business.ID, req.Category)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load scorecard")
	}

	maxScore := req.MaxScore
	if maxScore == 0 {
		maxScore = card.MaxScore
	}
	if err := repos.Scorecard.UpdateScores(card.ID, req.Score, maxScore); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update scorecard")
	}

	card, err = repos.Scorecard.GetByCategory(business.ID, req.Category)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to reload scorecard")
	}

	return c.JSON(card)
}

// HandleAddHighlight appends a highlight to one category's scorecard. Each
// highlight is its own row, so concurrent appends cannot overwrite each other.
func HandleAddHighlight(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	category := c.Params("category")
	if !models.IsValidScorecardCategory(category) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown scorecard category")
	}

	var req highlightRequest
	if err := c.BodyParser(&req); err != nil || req.Label == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing highlight label")
	}

	repos := repository.GetGlobalRepositories()
	card, err := repos.Scorecard.GetOrCreate(business.ID, category)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load scorecard")
	}

	highlight, err := repos.Scorecard.AddHighlight(card.ID, req.Label, req.Value)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to add highlight")
	}

	return c.Status(fiber.StatusCreated).JSON(highlight)
}

// HandleUpdateHighlight edits one highlight in place, addressed by its stable id.
func HandleUpdateHighlight(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	category := c.Params("category")
	highlightID := c.Params("highlightId")
	if !models.IsValidScorecardCategory(category) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown scorecard category")
	}

	var req highlightRequest
	if err := c.BodyParser(&req); err != nil || req.Label == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing highlight label")
	}

	repos := repository.GetGlobalRepositories()
	card, err := repos.Scorecard.GetByCategory(business.ID, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Scorecard not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load scorecard")
	}

	highlight, err := repos.Scorecard.UpdateHighlight(card.ID, highlightID, req.Label, req.Value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Highlight not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update highlight")
	}

	return c.JSON(highlight)
}

// HandleDeleteHighlight removes one highlight. Deleting a missing highlight is
// a 404, never a silent success.
func HandleDeleteHighlight(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	category := c.Params("category")
	highlightID := c.Params("highlightId")
	if !models.IsValidScorecardCategory(category) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown scorecard category")
	}

	repos := repository.GetGlobalRepositories()
	card, err := repos.Scorecard.GetByCategory(business.ID, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Scorecard not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load scorecard")
	}

	if err := repos.Scorecard.DeleteHighlight(card.ID, highlightID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Highlight not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete highlight")
	}

	return c.JSON(fiber.Map{"message": "Highlight deleted"})
}
