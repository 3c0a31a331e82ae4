package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/state"
	"shopfront/internal/theme"
)

// render injects the session user and the active theme palette so every
// template can style itself without reaching into the core.
func render(c *fiber.Ctx, st *state.Store, th *theme.Manager, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	snap := st.Snapshot()
	if snap.Session.User != nil {
		data["User"] = snap.Session.User
	}
	data["Colors"] = th.CurrentColors()
	data["Gradients"] = th.CurrentGradients()
	return c.Render(tmpl, data)
}
