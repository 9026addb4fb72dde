package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

func TestUserContextResolvedOnConnectCallback(t *testing.T) {
	app := fiber.New()
	app.Use(UserContextMiddleware)

	var sawContext bool
	var uc usercontext.UserContext
	app.Get("/auth/:provider/callback", func(c *fiber.Ctx) error {
		sawContext = c.Locals(usercontext.KeyUserContext) != nil
		uc = usercontext.GetUserContext(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/auth/google/callback", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The middleware must resolve a context on connect callbacks instead of
	// skipping them; without a session this resolves to anonymous, not absent.
	assert.True(t, sawContext, "user context not resolved on /auth/* path")
	assert.False(t, uc.IsLoggedIn)
}

func TestUserContextAnonymousWithoutSession(t *testing.T) {
	app := fiber.New()
	app.Use(UserContextMiddleware)

	var uc usercontext.UserContext
	app.Get("/me", func(c *fiber.Ctx) error {
		uc = usercontext.GetUserContext(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, uc.IsLoggedIn)
	assert.False(t, uc.IsAdmin)
	assert.Zero(t, uc.UserID)
}
