package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

type intakeQuestionRequest struct {
	Prompt   string         `json:"prompt"`
	Type     string         `json:"type"`
	Options  datatypes.JSON `json:"options"`
	Position int            `json:"position"`
}

// HandleListIntakeQuestions returns the intake questionnaire for a business in
// display order.
func HandleListIntakeQuestions(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	questions, err := repository.GetGlobalRepositories().Intake.GetQuestionsByBusinessID(business.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	return c.JSON(fiber.Map{"questions": questions})
}

// HandleCreateIntakeQuestion adds a question to the business questionnaire.
func HandleCreateIntakeQuestion(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req intakeQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Prompt == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing question prompt")
	}

	question := &models.IntakeQuestion{
		BusinessID: business.ID,
		Prompt:     req.Prompt,
		Type:       req.Type,
		Options:    req.Options,
		Position:   req.Position,
	}

	if err := repository.GetGlobalRepositories().Intake.CreateQuestion(question); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// HandleUpdateIntakeQuestion edits a question belonging to the business.
func HandleUpdateIntakeQuestion(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	questionID, err := paramUint(c, "questionId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	repos := repository.GetGlobalRepositories()
	question, err := repos.Intake.GetQuestion(questionID)
	if err != nil || question.BusinessID != business.ID {
		return jsonError(c, fiber.StatusNotFound, "Question not found")
	}

	var req intakeQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Prompt != "" {
		question.Prompt = req.Prompt
	}
	if req.Type != "" {
		question.Type = req.Type
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if req.Position > 0 {
		question.Position = req.Position
	}

	if err := repos.Intake.UpdateQuestion(question); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	return c.JSON(question)
}

// HandleDeleteIntakeQuestion removes a question together with its answers.
func HandleDeleteIntakeQuestion(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	questionID, err := paramUint(c, "questionId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	repos := repository.GetGlobalRepositories()
	question, err := repos.Intake.GetQuestion(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}
	if question.BusinessID != business.ID {
		return jsonError(c, fiber.StatusNotFound, "Question not found")
	}

	if err := repos.Intake.DeleteQuestion(question.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}

	return c.JSON(fiber.Map{"message": "Question deleted"})
}

// HandleSubmitIntakeAnswer saves the portal client's answer to one question.
// Repeated submissions update the same answer row.
func HandleSubmitIntakeAnswer(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	questionID, err := paramUint(c, "questionId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	question, err := repos.Intake.GetQuestion(questionID)
	if err != nil || question.BusinessID != business.ID {
		return jsonError(c, fiber.StatusNotFound, "Question not found")
	}

	portal, err := repos.Portal.Get(business.ID, usercontext.GetUserID(c))
	if err != nil || !portal.IsActive {
		return jsonError(c, fiber.StatusForbidden, "No active portal for this business")
	}

	answer, err := repos.Intake.UpsertAnswer(question.ID, portal.ID, req.Value)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to save answer")
	}

	return c.JSON(answer)
}

// HandleListIntakeAnswers returns the answers a portal client has submitted for
// this business.
func HandleListIntakeAnswers(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	repos := repository.GetGlobalRepositories()
	uc := usercontext.GetUserContext(c)

	var portalID uint
	if uc.IsAdmin {
		clientID, err := paramUint(c, "clientId")
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "Invalid client id")
		}
		portal, err := repos.Portal.Get(business.ID, clientID)
		if err != nil {
			return jsonError(c, fiber.StatusNotFound, "Portal not found")
		}
		portalID = portal.ID
	} else {
		portal, err := repos.Portal.Get(business.ID, uc.UserID)
		if err != nil || !portal.IsActive {
			return jsonError(c, fiber.StatusForbidden, "No active portal for this business")
		}
		portalID = portal.ID
	}

	answers, err := repos.Intake.GetAnswersByPortalID(portalID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load answers")
	}

	return c.JSON(fiber.Map{"answers": answers})
}
