package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
)

type assessmentRequest struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Notes string  `json:"notes"`
}

// HandleListAssessments returns all assessments for a business.
func HandleListAssessments(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	assessments, err := repository.GetGlobalRepositories().Assessment.GetByBusinessID(business.ID, false)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load assessments")
	}

	return c.JSON(fiber.Map{"assessments": assessments})
}

// HandleUpsertAssessment creates or updates the assessment identified by its
// name within the business.
func HandleUpsertAssessment(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req assessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing assessment name")
	}

	assessment := &models.Assessment{
		BusinessID: business.ID,
		Name:       req.Name,
		Score:      req.Score,
		Notes:      req.Notes,
	}

	if err := repository.GetGlobalRepositories().Assessment.Upsert(assessment); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to save assessment")
	}

	return c.JSON(assessment)
}

// HandleDeleteAssessment removes one assessment belonging to the business.
func HandleDeleteAssessment(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	assessmentID, err := paramUint(c, "assessmentId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid assessment id")
	}

	repos := repository.GetGlobalRepositories()
	assessment, err := repos.Assessment.GetByID(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Assessment not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load assessment")
	}
	if assessment.BusinessID != business.ID {
		return jsonError(c, fiber.StatusNotFound, "Assessment not found")
	}

	if err := repos.Assessment.Delete(assessment.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete assessment")
	}

	return c.JSON(fiber.Map{"message": "Assessment deleted"})
}
