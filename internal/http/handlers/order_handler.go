package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/coordinator"
	"shopfront/internal/domain"
	"shopfront/internal/gateway"
	applog "shopfront/internal/log"
	"shopfront/internal/state"
	"shopfront/internal/theme"
	"shopfront/internal/validate"
)

type OrderHandler struct {
	Coord *coordinator.Coordinator
	Store *state.Store
	Theme *theme.Manager
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	snap := h.Store.Snapshot()
	if len(snap.Cart.Lines) == 0 {
		return c.Redirect("/cart")
	}
	return render(c, h.Store, h.Theme, "checkout", fiber.Map{
		"Lines":  snap.Cart.Lines,
		"Totals": snap.Cart.Totals,
	})
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	zip, okZip := validate.Zip(c.FormValue("zip"))
	if !okName || !okZip {
		snap := h.Store.Snapshot()
		c.Status(400)
		return render(c, h.Store, h.Theme, "checkout", fiber.Map{
			"Lines":  snap.Cart.Lines,
			"Totals": snap.Cart.Totals,
			"Err":    "Please check the shipping details",
		})
	}
	req := gateway.OrderRequest{
		ShippingAddress: domain.Address{
			Name:    name,
			Street:  c.FormValue("street"),
			City:    c.FormValue("city"),
			Zip:     zip,
			Country: c.FormValue("country"),
		},
		PaymentMethod: c.FormValue("payment"),
		PromoCode:     c.FormValue("promo"),
	}
	o, err := h.Coord.CreateOrder(c.Context(), req)
	if err != nil {
		applog.Error(c, "order.place", err, nil)
		snap := h.Store.Snapshot()
		c.Status(502)
		return render(c, h.Store, h.Theme, "checkout", fiber.Map{
			"Lines":  snap.Cart.Lines,
			"Totals": snap.Cart.Totals,
			"Err":    snap.Orders.Error,
		})
	}
	applog.Audit(c, "order.placed", map[string]any{"order_id": o.ID})
	return c.Redirect("/orders")
}

func (h *OrderHandler) History(c *fiber.Ctx) error {
	if err := h.Coord.LoadOrders(c.Context(), c.QueryInt("page", 1), 20); err != nil {
		applog.Error(c, "order.history", err, nil)
	}
	snap := h.Store.Snapshot()
	return render(c, h.Store, h.Theme, "orders", fiber.Map{
		"Orders": snap.Orders.Orders,
		"Err":    snap.Orders.Error,
	})
}
