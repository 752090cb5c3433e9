package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"morefix/internal/domain"
)

// ensureSID returns the visitor's session id, minting the cookie on
// first contact.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// sessionUser reads the user the session middleware attached, if any.
func sessionUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
