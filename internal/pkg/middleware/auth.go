package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/internal/pkg/session"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

// RequireAuth rejects requests without an authenticated session.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}
	return c.Next()
}

// RequireAdmin rejects requests whose session does not carry the admin role.
// Authentication is checked first so anonymous callers get a 401, not a 403.
func RequireAdmin(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}
	if !uc.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "admin access required",
		})
	}
	return c.Next()
}

// RequirePortalMember rejects requests whose session has not verified the access
// code of the business in the route. A successful POST /portal/verify-access-code
// stores the resolved business id under KeyPortalBusinessID; admins pass
// regardless. Handlers still re-check the portal grant against the database, so
// a stale session value cannot outlive a deactivation.
func RequirePortalMember(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}
	if uc.IsAdmin {
		return c.Next()
	}
	verified := session.GetSessionValue(c, usercontext.KeyPortalBusinessID)
	if !verifiedBusinessMatches(verified, c.Params("id")) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "portal access not verified for this business",
		})
	}
	return c.Next()
}

// verifiedBusinessMatches reports whether the business id verified in the session
// is the one addressed by the route.
func verifiedBusinessMatches(verified, routeID string) bool {
	return verified != "" && verified == routeID
}
