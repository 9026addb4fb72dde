package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/env"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

// HandleOAuthBegin starts the provider consent flow. The business access code
// rides along as the OAuth state parameter so the callback can tie the granted
// tokens back to the right workspace.
func HandleOAuthBegin(c *fiber.Ctx) error {
	provider := c.Params("provider")
	if !models.IsKnownProvider(provider) {
		return jsonError(c, fiber.StatusNotFound, "Unknown provider")
	}
	if c.Query("state") == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing state parameter")
	}

	return gothfiber.BeginAuthHandler(c)
}

// HandleOAuthCallback completes the provider flow, stores the token material
// and flips the business tool to granted. The connect outcome is reported via
// redirect so the flow works from a plain browser tab.
func HandleOAuthCallback(c *fiber.Ctx) error {
	provider := c.Params("provider")

	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return redirectConnectStatus(c, provider, false, "OAuth handshake failed")
	}

	accessCode := c.Query("state")
	if accessCode == "" {
		return redirectConnectStatus(c, provider, false, "Missing connect state")
	}

	repos := repository.GetGlobalRepositories()
	business, err := repos.Business.GetByAccessCode(accessCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return redirectConnectStatus(c, provider, false, "Unknown access code")
		}
		return redirectConnectStatus(c, provider, false, "Failed to resolve business")
	}

	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return redirectConnectStatus(c, provider, false, "Not logged in")
	}

	// Deactivated portals cannot be revived through the connect flow either
	if !uc.IsAdmin {
		clientPortal, err := repos.Portal.Get(business.ID, uc.UserID)
		if err != nil || !clientPortal.IsActive {
			return redirectConnectStatus(c, provider, false, "Portal access has been deactivated")
		}
	}

	var expiresAt *time.Time
	if !u.ExpiresAt.IsZero() {
		t := u.ExpiresAt
		expiresAt = &t
	}

	conn := &models.ToolConnection{
		UserID:       uc.UserID,
		Provider:     u.Provider,
		AccessToken:  u.AccessToken,
		RefreshToken: u.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	if err := repos.Connection.Upsert(conn); err != nil {
		return redirectConnectStatus(c, provider, false, "Failed to store connection")
	}

	if err := repos.Tool.SetStatus(business.ID, u.Provider, models.ToolStatusGranted); err != nil {
		return redirectConnectStatus(c, provider, false, "Failed to update tool status")
	}

	return redirectConnectStatus(c, provider, true, "")
}

// HandleOAuthLogout clears the provider session cookie.
func HandleOAuthLogout(c *fiber.Ctx) error {
	if err := gothfiber.Logout(c); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to clear provider session")
	}
	return c.JSON(fiber.Map{"message": "Provider session cleared"})
}

// redirectConnectStatus sends the browser to the frontend connect-status page,
// or renders the local fallback view when no frontend is configured.
func redirectConnectStatus(c *fiber.Ctx, provider string, success bool, message string) error {
	frontend := env.GetEnv("FRONTEND_URL", "")
	if frontend != "" {
		url := fmt.Sprintf("%s/connect-status?provider=%s&success=%t", frontend, provider, success)
		if message != "" {
			url += "&error=" + message
		}
		return c.Redirect(url, fiber.StatusSeeOther)
	}

	return c.Render("connect/status", fiber.Map{
		"Provider": provider,
		"Success":  success,
		"Message":  message,
	})
}
