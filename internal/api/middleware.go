package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nordvik/inkwell/internal/models"
)

const (
	authCookieName = "inkwell_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// AuthOptional attaches the user when a valid session cookie is present but
// never rejects the request. Public blog reads use it to decide whether
// unpublished posts are visible.
func (handler *Handler) AuthOptional(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		c.Locals(contextUserKey, user)
	}
	return c.Next()
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
