package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/session"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a typed user context exactly once
// per request. Every handler reads authentication through usercontext; no handler
// falls back to bearer decoding or body-supplied user ids. This runs on /auth/*
// too: the connector callback needs the logged-in user, and the app session cookie
// (session_id) is distinct from goth's, so both stores coexist on those paths.
func UserContextMiddleware(c *fiber.Ctx) error {
	store := session.GetSessionStore()
	if store == nil {
		return anonymous(c)
	}

	sess, err := store.Get(c)
	if err != nil {
		return anonymous(c)
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		return anonymous(c)
	}

	uid, ok := userID.(uint)
	if !ok {
		return anonymous(c)
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	role, _ := sess.Get(usercontext.KeyUserRole).(string)

	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		UserID:     uid,
		Username:   username,
		Role:       role,
		IsLoggedIn: true,
		IsAdmin:    role == models.ROLE_ADMIN,
	})
	c.Locals(usercontext.KeyFromProtected, true)

	return c.Next()
}

func anonymous(c *fiber.Ctx) error {
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		IsLoggedIn: false,
		IsAdmin:    false,
	})
	c.Locals(usercontext.KeyFromProtected, false)
	return c.Next()
}
