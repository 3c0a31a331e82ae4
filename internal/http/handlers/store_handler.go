package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/coordinator"
	applog "shopfront/internal/log"
	"shopfront/internal/state"
	"shopfront/internal/theme"
	"shopfront/internal/validate"
)

type StoreHandler struct {
	Coord *coordinator.Coordinator
	Store *state.Store
	Theme *theme.Manager
}

func (h *StoreHandler) List(c *fiber.Ctx) error {
	if err := h.Coord.LoadStores(c.Context()); err != nil {
		applog.Error(c, "stores.list", err, nil)
	}
	snap := h.Store.Snapshot()
	return render(c, h.Store, h.Theme, "stores", fiber.Map{
		"Stores": snap.Shops.Stores,
		"Mine":   snap.Shops.Mine,
		"Err":    snap.Shops.Error,
	})
}

func (h *StoreHandler) Follow(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("storeId"))
	if !ok {
		return c.Status(400).SendString("missing storeId")
	}
	if err := h.Coord.FollowStore(c.Context(), id); err != nil {
		applog.Error(c, "stores.follow", err, map[string]any{"store": id})
	}
	return c.Redirect("/stores")
}
