package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

func withUser(uc usercontext.UserContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, uc)
		return c.Next()
	}
}

func portalMemberApp(pre ...fiber.Handler) *fiber.App {
	app := fiber.New()
	for _, h := range pre {
		app.Use(h)
	}
	app.Get("/portal/businesses/:id", RequirePortalMember, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequirePortalMemberAnonymousIsUnauthorized(t *testing.T) {
	app := portalMemberApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/portal/businesses/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePortalMemberAdminBypasses(t *testing.T) {
	app := portalMemberApp(withUser(usercontext.UserContext{
		UserID:     1,
		Role:       models.ROLE_ADMIN,
		IsLoggedIn: true,
		IsAdmin:    true,
	}))

	resp, err := app.Test(httptest.NewRequest("GET", "/portal/businesses/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePortalMemberUnverifiedClientIsForbidden(t *testing.T) {
	app := portalMemberApp(withUser(usercontext.UserContext{
		UserID:     2,
		Role:       models.ROLE_CLIENT,
		IsLoggedIn: true,
	}))

	// No access code was verified in this session
	resp, err := app.Test(httptest.NewRequest("GET", "/portal/businesses/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestVerifiedBusinessMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, verifiedBusinessMatches("7", "7"))

	// The guard is scoped to the business in the route, not "any portal"
	assert.False(t, verifiedBusinessMatches("7", "8"))
	assert.False(t, verifiedBusinessMatches("", "8"))
	assert.False(t, verifiedBusinessMatches("", ""))
}
