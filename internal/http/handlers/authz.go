package handlers

import (
	applog "morefix/internal/log"
	"morefix/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser enforces that a user is signed in; otherwise redirect to
// the login page.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin additionally checks the ADMIN role claim. Denials are
// not a user flow; they render a generic refusal.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Accès refusé"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
