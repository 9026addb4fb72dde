package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

type businessRequest struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// HandleCreateBusiness creates a business workspace owned by the calling admin.
// The access code is generated server side and returned in the response.
func HandleCreateBusiness(c *fiber.Ctx) error {
	var req businessRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	business := &models.Business{
		Name:        req.Name,
		Industry:    req.Industry,
		Website:     req.Website,
		Description: req.Description,
		AdminID:     usercontext.GetUserID(c),
	}
	if err := business.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if err := repos.Business.Create(business); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create business")
	}

	// Every workspace starts with the standard tool request rows
	if err := repos.Tool.SeedDefaults(business.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to seed default tools")
	}

	return c.Status(fiber.StatusCreated).JSON(business)
}

// HandleListBusinesses returns the calling admin's businesses.
func HandleListBusinesses(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	businesses, err := repos.Business.GetByAdminID(usercontext.GetUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to list businesses")
	}

	return c.JSON(fiber.Map{"businesses": businesses})
}

// HandleGetBusiness returns one business with its tools.
func HandleGetBusiness(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	tools, err := repository.GetGlobalRepositories().Tool.GetByBusinessID(business.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load tools")
	}

	return c.JSON(fiber.Map{
		"business": business,
		"tools":    tools,
	})
}

// HandleUpdateBusiness updates workspace attributes. The access code is never
// writable through this endpoint.
func HandleUpdateBusiness(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req businessRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name != "" {
		business.Name = req.Name
	}
	business.Industry = req.Industry
	business.Website = req.Website
	business.Description = req.Description

	if err := business.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := repository.GetGlobalRepositories().Business.Update(business); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update business")
	}

	return c.JSON(business)
}

// HandleDeleteBusiness soft deletes a business workspace.
func HandleDeleteBusiness(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	if err := repository.GetGlobalRepositories().Business.Delete(business.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete business")
	}

	return c.JSON(fiber.Map{"message": "Business deleted"})
}

// HandleGetLeadsieURL reads the third-party access share link out of the
// business connections bag.
func HandleGetLeadsieURL(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var connections map[string]string
	if len(business.Connections) > 0 {
		if err := json.Unmarshal(business.Connections, &connections); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Corrupt connections data")
		}
	}

	url, ok := connections["leadsie_url"]
	if !ok || url == "" {
		return jsonError(c, fiber.StatusNotFound, "No share link configured")
	}

	return c.JSON(fiber.Map{"url": url})
}

// HandleSetLeadsieURL stores the third-party access share link.
func HandleSetLeadsieURL(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing url")
	}

	connections := map[string]string{}
	if len(business.Connections) > 0 {
		_ = json.Unmarshal(business.Connections, &connections)
	}
	connections["leadsie_url"] = req.URL

	raw, err := json.Marshal(connections)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to encode connections")
	}
	business.Connections = raw

	if err := repository.GetGlobalRepositories().Business.Update(business); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update business")
	}

	return c.JSON(fiber.Map{"url": req.URL})
}

// HandleGetBusinessByUUID resolves a business by its public identifier.
func HandleGetBusinessByUUID(c *fiber.Ctx) error {
	business, err := repository.GetGlobalRepositories().Business.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Business not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load business")
	}

	if !usercontext.IsAdmin(c) && !business.IsOwnedBy(usercontext.GetUserID(c)) {
		return jsonError(c, fiber.StatusForbidden, "No access to this business")
	}

	return c.JSON(business)
}
