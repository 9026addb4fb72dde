package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

// AdminController handles agency-side administration using the repository pattern.
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repository dependencies.
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{repos: repos}
}

// HandleDashboard returns headline counts for the admin overview.
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	totalUsers, err := ac.repos.User.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	totalBusinesses, err := ac.repos.Business.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to count businesses")
	}

	recentUsers, err := ac.repos.User.List(0, 5)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load recent users")
	}

	recentBusinesses, err := ac.repos.Business.List(0, 5)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load recent businesses")
	}

	return c.JSON(fiber.Map{
		"total_users":       totalUsers,
		"total_businesses":  totalBusinesses,
		"recent_users":      recentUsers,
		"recent_businesses": recentBusinesses,
	})
}

// HandleListClients returns all active client accounts.
func (ac *AdminController) HandleListClients(c *fiber.Ctx) error {
	clients, err := ac.repos.User.ListClients()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load clients")
	}

	return c.JSON(fiber.Map{"clients": clients})
}

// HandleSetPortalActive switches one client portal on or off. A deactivated
// portal stays off until an admin turns it back on here; redeeming the access
// code again does not reactivate it.
func (ac *AdminController) HandleSetPortalActive(c *fiber.Ctx) error {
	portalID, err := paramUint(c, "portalId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid portal id")
	}

	var req struct {
		Active *bool `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil || req.Active == nil {
		return jsonError(c, fiber.StatusBadRequest, "Missing active flag")
	}

	if _, err := ac.repos.Portal.GetByID(portalID); err != nil {
		return jsonError(c, fiber.StatusNotFound, "Portal not found")
	}

	if err := ac.repos.Portal.SetActive(portalID, *req.Active); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update portal")
	}

	clientPortal, err := ac.repos.Portal.GetByID(portalID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to reload portal")
	}

	return c.JSON(clientPortal)
}

// HandleGrantAllAccess grants every active client a portal on every business.
// The sweep is recorded in the audit trail with the number of portals created.
func (ac *AdminController) HandleGrantAllAccess(c *fiber.Ctx) error {
	created, err := ac.repos.Portal.GrantAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to grant access")
	}

	if err := ac.repos.Audit.Record(usercontext.GetUserID(c), models.AuditGrantAllAccess, map[string]any{
		"portals_created": created,
	}); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Grant succeeded but audit record failed")
	}

	return c.JSON(fiber.Map{"portals_created": created})
}

// HandleListAuditLogs returns the audit trail, newest first.
func (ac *AdminController) HandleListAuditLogs(c *fiber.Ctx) error {
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := ac.repos.Audit.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load audit logs")
	}

	return c.JSON(fiber.Map{"audit_logs": logs})
}

// HandleSetToolStatus lets an admin override a tool request state directly,
// for providers connected outside the OAuth flow.
func (ac *AdminController) HandleSetToolStatus(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	provider := c.Params("provider")
	if !models.IsKnownProvider(provider) {
		return jsonError(c, fiber.StatusNotFound, "Unknown provider")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	switch req.Status {
	case models.ToolStatusPending, models.ToolStatusRequested, models.ToolStatusGranted, models.ToolStatusDenied:
	default:
		return jsonError(c, fiber.StatusBadRequest, "Unknown tool status")
	}

	if err := ac.repos.Tool.SetStatus(business.ID, provider, req.Status); err != nil {
		return jsonError(c, fiber.StatusNotFound, "Tool not found")
	}

	tool, err := ac.repos.Tool.Get(business.ID, provider)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to reload tool")
	}

	return c.JSON(tool)
}
