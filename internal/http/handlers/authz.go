package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopfront/internal/log"
	"shopfront/internal/state"
)

// RequireUser redirects to the login page when no session is active.
func RequireUser(st *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !st.Snapshot().Session.Authenticated {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireAdmin guards the theme back-office.
func RequireAdmin(st *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := st.Snapshot().Session.User
		if u == nil || !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		return c.Next()
	}
}
