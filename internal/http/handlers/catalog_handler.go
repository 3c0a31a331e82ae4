package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/coordinator"
	"shopfront/internal/gateway"
	applog "shopfront/internal/log"
	"shopfront/internal/state"
	"shopfront/internal/theme"
	"shopfront/internal/validate"
)

type CatalogHandler struct {
	Coord *coordinator.Coordinator
	Store *state.Store
	Theme *theme.Manager
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	_ = h.Coord.LoadFeatured(c.Context())
	if err := h.Coord.LoadProducts(c.Context(), gateway.ProductQuery{Limit: 12}); err != nil {
		applog.Error(c, "home.load", err, nil)
	}
	_ = h.Coord.LoadCategories(c.Context())

	snap := h.Store.Snapshot()
	return render(c, h.Store, h.Theme, "home", fiber.Map{
		"Featured":   snap.Catalog.Featured,
		"Products":   snap.Catalog.Products,
		"Categories": snap.Catalog.Categories,
		"Err":        snap.Catalog.Error,
	})
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	cat, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Unknown category"})
	}
	q := gateway.ProductQuery{
		Category:  cat,
		Page:      c.QueryInt("page", 1),
		Limit:     12,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if err := h.Coord.LoadProducts(c.Context(), q); err != nil {
		applog.Error(c, "category.load", err, map[string]any{"category": cat})
	}
	snap := h.Store.Snapshot()
	return render(c, h.Store, h.Theme, "home", fiber.Map{
		"Products":   snap.Catalog.Products,
		"Categories": snap.Catalog.Categories,
		"Category":   cat,
		"Err":        snap.Catalog.Error,
	})
}

func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return c.Redirect("/")
	}
	err := h.Coord.SearchProducts(c.Context(), gateway.ProductQuery{
		Search: q,
		Page:   c.QueryInt("page", 1),
		Limit:  12,
	})
	if err != nil {
		applog.Error(c, "search.load", err, map[string]any{"q": q})
	}
	snap := h.Store.Snapshot()
	return render(c, h.Store, h.Theme, "home", fiber.Map{
		"Products": snap.Catalog.Products,
		"Query":    q,
		"Err":      snap.Catalog.Error,
	})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	snap := h.Store.Snapshot()
	for _, p := range append(snap.Catalog.Products, snap.Catalog.Featured...) {
		if p.ID == id {
			return render(c, h.Store, h.Theme, "product", fiber.Map{
				"P":        p,
				"Discount": p.DiscountPercent(),
			})
		}
	}
	// Not in the loaded pages; refresh and retry once.
	if err := h.Coord.LoadProducts(c.Context(), gateway.ProductQuery{Limit: 100}); err == nil {
		for _, p := range h.Store.Snapshot().Catalog.Products {
			if p.ID == id {
				return render(c, h.Store, h.Theme, "product", fiber.Map{
					"P":        p,
					"Discount": p.DiscountPercent(),
				})
			}
		}
	}
	return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
}
