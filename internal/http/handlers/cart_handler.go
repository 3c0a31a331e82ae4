package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/coordinator"
	applog "shopfront/internal/log"
	"shopfront/internal/state"
	"shopfront/internal/theme"
	"shopfront/internal/validate"
)

type CartHandler struct {
	Coord *coordinator.Coordinator
	Store *state.Store
	Theme *theme.Manager
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	_ = h.Coord.LoadCart(c.Context())
	snap := h.Store.Snapshot()
	return render(c, h.Store, h.Theme, "cart", fiber.Map{
		"Lines":  snap.Cart.Lines,
		"Totals": snap.Cart.Totals,
		"Err":    snap.Cart.Error,
	})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	size := c.FormValue("size")
	color := c.FormValue("color")

	if err := h.Coord.AddToCart(c.Context(), productID, qty, size, color); err != nil {
		applog.Error(c, "cart.add", err, map[string]any{"product": productID})
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Coord.UpdateCartItem(c.Context(), productID, qty, c.FormValue("size"), c.FormValue("color")); err != nil {
		applog.Error(c, "cart.update", err, map[string]any{"product": productID})
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Coord.RemoveCartItem(c.Context(), productID, c.FormValue("size"), c.FormValue("color")); err != nil {
		applog.Error(c, "cart.remove", err, map[string]any{"product": productID})
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Coord.ClearCart(c.Context()); err != nil {
		applog.Error(c, "cart.clear", err, nil)
	}
	return c.Redirect("/cart")
}
