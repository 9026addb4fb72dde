package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/portal"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/publish"
)

// Global controller instances wired from the repository factory
var (
	adminController   *AdminController
	publishController *PublishController
	portalController  *PortalController
)

// InitializeControllers wires the struct-based controllers with repositories
// and the publish/gate services. Called once during router installation.
func InitializeControllers() {
	repos := repository.GetGlobalRepositories()
	publishSvc := publish.NewService(repos)

	adminController = NewAdminController(repos)
	publishController = NewPublishController(repos, publishSvc)
	portalController = NewPortalController(repos, portal.NewService(repos, publishSvc), publishSvc)
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeControllers()
	}
	return adminController
}

// GetPublishController returns the global publish controller instance
func GetPublishController() *PublishController {
	if publishController == nil {
		InitializeControllers()
	}
	return publishController
}

// GetPortalController returns the global portal controller instance
func GetPortalController() *PortalController {
	if portalController == nil {
		InitializeControllers()
	}
	return portalController
}

// Adapter functions so routes can reference plain handler funcs

func HandleAdminDashboard(c *fiber.Ctx) error {
	return GetAdminController().HandleDashboard(c)
}

func HandleAdminClients(c *fiber.Ctx) error {
	return GetAdminController().HandleListClients(c)
}

func HandleAdminSetPortalActive(c *fiber.Ctx) error {
	return GetAdminController().HandleSetPortalActive(c)
}

func HandleAdminGrantAllAccess(c *fiber.Ctx) error {
	return GetAdminController().HandleGrantAllAccess(c)
}

func HandleAdminAuditLogs(c *fiber.Ctx) error {
	return GetAdminController().HandleListAuditLogs(c)
}

func HandleAdminSetToolStatus(c *fiber.Ctx) error {
	return GetAdminController().HandleSetToolStatus(c)
}

func HandleDomainPublish(c *fiber.Ctx) error {
	return GetPublishController().HandlePublish(c)
}

func HandleDomainUnpublish(c *fiber.Ctx) error {
	return GetPublishController().HandleUnpublish(c)
}

func HandlePublishStatus(c *fiber.Ctx) error {
	return GetPublishController().HandlePublishStatus(c)
}

func HandleVerifyAccessCode(c *fiber.Ctx) error {
	return GetPortalController().HandleVerifyAccessCode(c)
}

func HandlePortalList(c *fiber.Ctx) error {
	return GetPortalController().HandleListPortals(c)
}

func HandlePortalView(c *fiber.Ctx) error {
	return GetPortalController().HandlePortalView(c)
}

func HandlePortalRequestTool(c *fiber.Ctx) error {
	return GetPortalController().HandleRequestToolAccess(c)
}
