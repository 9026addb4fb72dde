package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/portal"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/publish"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/session"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

// PortalController serves the client-facing surface: access code redemption and
// the published view of one business.
type PortalController struct {
	repos   *repository.Repositories
	gate    *portal.Service
	publish *publish.Service
}

func NewPortalController(repos *repository.Repositories, gate *portal.Service, publishSvc *publish.Service) *PortalController {
	return &PortalController{repos: repos, gate: gate, publish: publishSvc}
}

// HandleVerifyAccessCode redeems a business access code for the logged-in
// client. Redeeming is idempotent: one portal row per client and business, and
// a deactivated portal is never switched back on by redeeming again.
func (pc *PortalController) HandleVerifyAccessCode(c *fiber.Ctx) error {
	var req struct {
		AccessCode string `json:"access_code"`
	}
	if err := c.BodyParser(&req); err != nil || req.AccessCode == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing access code")
	}

	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	result, err := pc.gate.VerifyAccessCode(req.AccessCode, uc.UserID)
	if err != nil {
		switch {
		case errors.Is(err, portal.ErrCodeNotFound):
			return jsonError(c, fiber.StatusNotFound, "Access code not found")
		case errors.Is(err, portal.ErrPortalDeactivated):
			return jsonError(c, fiber.StatusForbidden, "Portal access has been deactivated")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "Failed to verify access code")
		}
	}

	// Remember the verified business so portal routes can authorize without
	// re-redeeming the code.
	_ = session.SetSessionValue(c, usercontext.KeyPortalBusinessID, strconv.FormatUint(uint64(result.BusinessID), 10))
	_ = session.SetSessionValue(c, usercontext.KeyPortalID, strconv.FormatUint(uint64(result.PortalID), 10))

	return c.JSON(result)
}

// HandleListPortals returns every active portal grant for the logged-in client.
func (pc *PortalController) HandleListPortals(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	portals, err := pc.repos.Portal.GetForClient(uc.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load portals")
	}

	return c.JSON(fiber.Map{"portals": portals})
}

// HandlePortalView returns the published slice of one business: published
// scorecards, opportunities and assessments, client-requested metrics, the
// tool request states and the client's intake answers.
func (pc *PortalController) HandlePortalView(c *fiber.Ctx) error {
	businessID, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid business id")
	}

	uc := usercontext.GetUserContext(c)
	clientPortal, err := pc.repos.Portal.Get(businessID, uc.UserID)
	if err != nil || !clientPortal.IsActive {
		return jsonError(c, fiber.StatusForbidden, "No access to this business")
	}

	business, err := pc.repos.Business.GetByID(businessID)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "Business not found")
	}

	scorecards, err := pc.repos.Scorecard.GetByBusinessID(businessID, true)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load scorecards")
	}

	opportunities, err := pc.repos.Opportunity.GetByBusinessID(businessID, true)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load opportunities")
	}

	assessments, err := pc.repos.Assessment.GetByBusinessID(businessID, true)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load assessments")
	}

	metrics, err := pc.repos.Metric.GetByBusinessID(businessID, true)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}

	tools, err := pc.repos.Tool.GetByBusinessID(businessID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load tools")
	}

	answers, err := pc.repos.Intake.GetAnswersByPortalID(clientPortal.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load answers")
	}

	status, err := pc.publish.GetStatus(businessID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to derive publish status")
	}

	return c.JSON(fiber.Map{
		"business": fiber.Map{
			"id":   business.ID,
			"uuid": business.UUID,
			"name": business.Name,
		},
		"published":      status,
		"scorecards":     scorecards,
		"opportunities":  opportunities,
		"assessments":    assessments,
		"metrics":        metrics,
		"tools":          tools,
		"intake_answers": answers,
	})
}

// HandleRequestToolAccess lets the portal client flag a tool as requested so
// the admin knows to send a connect invitation.
func (pc *PortalController) HandleRequestToolAccess(c *fiber.Ctx) error {
	businessID, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid business id")
	}

	uc := usercontext.GetUserContext(c)
	clientPortal, err := pc.repos.Portal.Get(businessID, uc.UserID)
	if err != nil || !clientPortal.IsActive {
		return jsonError(c, fiber.StatusForbidden, "No access to this business")
	}

	provider := c.Params("provider")
	if !models.IsKnownProvider(provider) {
		return jsonError(c, fiber.StatusNotFound, "Unknown provider")
	}

	if err := pc.repos.Tool.SetStatus(businessID, provider, models.ToolStatusRequested); err != nil {
		return jsonError(c, fiber.StatusNotFound, "Tool not found")
	}

	tool, err := pc.repos.Tool.Get(businessID, provider)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to reload tool")
	}

	return c.JSON(tool)
}
