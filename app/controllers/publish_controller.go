package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/publish"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

// PublishController flips the published flag for whole content domains and
// reports the derived publish status.
type PublishController struct {
	repos   *repository.Repositories
	publish *publish.Service
}

func NewPublishController(repos *repository.Repositories, svc *publish.Service) *PublishController {
	return &PublishController{repos: repos, publish: svc}
}

func (pc *PublishController) setPublished(c *fiber.Ctx, published bool) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	domain, err := publish.ParseDomain(c.Params("domain"))
	if err != nil {
		if errors.Is(err, publish.ErrUnknownDomain) {
			return jsonError(c, fiber.StatusNotFound, "Unknown content domain")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to resolve domain")
	}

	if err := pc.publish.SetPublished(domain, business.ID, published); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update publish state")
	}

	_ = pc.repos.Audit.Record(usercontext.GetUserID(c), models.AuditPublishToggle, map[string]any{
		"business_id": business.ID,
		"domain":      domain,
		"published":   published,
	})

	status, err := pc.publish.GetStatus(business.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to derive publish status")
	}

	return c.JSON(status)
}

// HandlePublish marks every item of a content domain as published.
func (pc *PublishController) HandlePublish(c *fiber.Ctx) error {
	return pc.setPublished(c, true)
}

// HandleUnpublish retracts a whole content domain from the portal.
func (pc *PublishController) HandleUnpublish(c *fiber.Ctx) error {
	return pc.setPublished(c, false)
}

// HandlePublishStatus reports per-domain publish state derived from the rows
// themselves.
func (pc *PublishController) HandlePublishStatus(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	status, err := pc.publish.GetStatus(business.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to derive publish status")
	}

	return c.JSON(status)
}
