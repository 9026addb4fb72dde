package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/session"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account. Self-registration always yields a
// client account; admin accounts are provisioned by an existing admin.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Role == models.ROLE_ADMIN && usercontext.IsAdmin(c) {
		user.Role = models.ROLE_ADMIN
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.User.GetByEmail(req.Email); err == nil {
		return jsonError(c, fiber.StatusConflict, "Email already registered")
	}

	if err := repos.User.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin verifies credentials and opens a session. Login failures are
// deliberately indistinct about whether the email or password was wrong.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive() {
		return jsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Session init failed")
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyUserRole, user.Role)

	if err := sess.Save(); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Session save failed")
	}

	return c.JSON(user)
}

// HandleLogout destroys the current session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// HandleMe returns the account behind the current session.
func HandleMe(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "Not logged in")
	}

	user, err := repository.GetGlobalRepositories().User.GetByID(uc.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(user)
}
