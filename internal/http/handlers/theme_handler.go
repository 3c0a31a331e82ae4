package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopfront/internal/log"
	"shopfront/internal/state"
	"shopfront/internal/theme"
	"shopfront/internal/validate"
)

type ThemeHandler struct {
	Theme *theme.Manager
	Store *state.Store
}

func (h *ThemeHandler) Page(c *fiber.Ctx) error {
	exported, _ := h.Theme.Export()
	return render(c, h.Store, h.Theme, "theme", fiber.Map{
		"Settings": h.Theme.Current(),
		"Presets":  theme.PresetNames(),
		"Exported": exported,
	})
}

func (h *ThemeHandler) ApplyPreset(c *fiber.Ctx) error {
	name := c.FormValue("preset")
	if err := h.Theme.ApplyPreset(name); err != nil {
		applog.Error(c, "theme.preset", err, map[string]any{"preset": name})
		return c.Status(400).Redirect("/admin/theme")
	}
	applog.Audit(c, "theme.preset", map[string]any{"preset": name})
	return c.Redirect("/admin/theme")
}

// UpdateColors applies only the hex fields actually submitted.
func (h *ThemeHandler) UpdateColors(c *fiber.Ctx) error {
	var p theme.ColorsPatch
	set := func(dst **string, field string) {
		if v, ok := validate.HexColor(c.FormValue(field)); ok {
			*dst = &v
		}
	}
	set(&p.Primary, "primary")
	set(&p.Secondary, "secondary")
	set(&p.Accent, "accent")
	set(&p.Background, "background")
	set(&p.Surface, "surface")
	set(&p.Text, "text")
	set(&p.Border, "border")

	if err := h.Theme.UpdateColors(p); err != nil {
		applog.Error(c, "theme.colors", err, nil)
	}
	return c.Redirect("/admin/theme")
}

func (h *ThemeHandler) Export(c *fiber.Ctx) error {
	out, err := h.Theme.Export()
	if err != nil {
		return c.Status(500).SendString("export failed")
	}
	c.Set("Content-Disposition", `attachment; filename="theme-settings.json"`)
	c.Set("Content-Type", "application/json")
	return c.SendString(out)
}

func (h *ThemeHandler) Import(c *fiber.Ctx) error {
	raw := c.FormValue("settings")
	if err := h.Theme.Import(raw); err != nil {
		applog.Error(c, "theme.import", err, nil)
		exported, _ := h.Theme.Export()
		c.Status(400)
		return render(c, h.Store, h.Theme, "theme", fiber.Map{
			"Settings": h.Theme.Current(),
			"Presets":  theme.PresetNames(),
			"Exported": exported,
			"Err":      "Import failed: the settings are not valid JSON",
		})
	}
	applog.Audit(c, "theme.import", nil)
	return c.Redirect("/admin/theme")
}
