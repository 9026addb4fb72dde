package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   statusKey(status),
		"message": message,
	})
}

func statusKey(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusConflict:
		return "conflict"
	case fiber.StatusBadGateway:
		return "bad_gateway"
	case fiber.StatusServiceUnavailable:
		return "service_unavailable"
	default:
		return "internal_server_error"
	}
}

// requireBusiness loads a business by :id and verifies the caller may act on it.
// Admins may act on any business; clients only on businesses granted through an
// active portal.
func requireBusiness(c *fiber.Ctx) (*models.Business, error) {
	businessID, err := paramUint(c, "id")
	if err != nil {
		return nil, jsonError(c, fiber.StatusBadRequest, "Invalid business id")
	}

	repos := repository.GetGlobalRepositories()
	business, err := repos.Business.GetByID(businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "Business not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "Failed to load business")
	}

	uc := usercontext.GetUserContext(c)
	if uc.IsAdmin {
		return business, nil
	}

	portal, err := repos.Portal.Get(business.ID, uc.UserID)
	if err != nil || !portal.IsActive {
		return nil, jsonError(c, fiber.StatusForbidden, "No access to this business")
	}

	return business, nil
}
