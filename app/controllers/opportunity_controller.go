package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
)

type opportunityRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	TimelineSpan int    `json:"timeline_span"`
}

// HandleListOpportunities returns all opportunities for a business.
func HandleListOpportunities(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	opps, err := repository.GetGlobalRepositories().Opportunity.GetByBusinessID(business.ID, false)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load opportunities")
	}

	return c.JSON(fiber.Map{"opportunities": opps})
}

// HandleCreateOpportunity creates an opportunity. Legacy descriptions may still
// carry an inline span marker, which is extracted into the typed column.
func HandleCreateOpportunity(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req opportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing title")
	}
	if !models.IsValidOpportunityCategory(req.Category) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown opportunity category")
	}

	description, span := models.SplitSpanMarker(req.Description)
	if req.TimelineSpan > 0 {
		span = req.TimelineSpan
	}

	status := req.Status
	if status == "" {
		status = models.OppStatusOpen
	} else if !models.IsValidOpportunityStatus(status) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown opportunity status")
	}

	opp := &models.Opportunity{
		BusinessID:   business.ID,
		Title:        req.Title,
		Description:  description,
		Category:     req.Category,
		Status:       status,
		TimelineSpan: span,
	}

	if err := repository.GetGlobalRepositories().Opportunity.Create(opp); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create opportunity")
	}

	return c.Status(fiber.StatusCreated).JSON(opp)
}

// HandleUpdateOpportunity updates an opportunity belonging to the business.
func HandleUpdateOpportunity(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	oppID, err := paramUint(c, "oppId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid opportunity id")
	}

	repos := repository.GetGlobalRepositories()
	opp, err := repos.Opportunity.GetByID(oppID)
	if err != nil || opp.BusinessID != business.ID {
		return jsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}

	var req opportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Title != "" {
		opp.Title = req.Title
	}
	if req.Description != "" {
		description, span := models.SplitSpanMarker(req.Description)
		opp.Description = description
		if req.TimelineSpan == 0 {
			opp.TimelineSpan = span
		}
	}
	if req.Category != "" {
		if !models.IsValidOpportunityCategory(req.Category) {
			return jsonError(c, fiber.StatusBadRequest, "Unknown opportunity category")
		}
		opp.Category = req.Category
	}
	if req.Status != "" {
		if !models.IsValidOpportunityStatus(req.Status) {
			return jsonError(c, fiber.StatusBadRequest, "Unknown opportunity status")
		}
		opp.Status = req.Status
	}
	if req.TimelineSpan > 0 {
		opp.TimelineSpan = req.TimelineSpan
	}

	if err := repos.Opportunity.Update(opp); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update opportunity")
	}

	return c.JSON(opp)
}

// HandleDeleteOpportunity removes an opportunity belonging to the business.
func HandleDeleteOpportunity(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	oppID, err := paramUint(c, "oppId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid opportunity id")
	}

	repos := repository.GetGlobalRepositories()
	opp, err := repos.Opportunity.GetByID(oppID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Opportunity not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load opportunity")
	}
	if opp.BusinessID != business.ID {
		return jsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}

	if err := repos.Opportunity.Delete(opp.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete opportunity")
	}

	return c.JSON(fiber.Map{"message": "Opportunity deleted"})
}
