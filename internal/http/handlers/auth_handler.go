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

type AuthHandler struct {
	Coord *coordinator.Coordinator
	Store *state.Store
	Theme *theme.Manager
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, h.Store, h.Theme, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}
	if err := h.Coord.Login(c.Context(), email, c.FormValue("password")); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		msg := h.Store.Snapshot().Session.Error
		return c.Status(401).Render("login", fiber.Map{"Err": msg})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, h.Store, h.Theme, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	email, okEmail := validate.Email(c.FormValue("email"))
	name, okName := validate.Name(c.FormValue("name"))
	pass := c.FormValue("password")
	if !okEmail || !okName || !validate.Password(pass) {
		return c.Status(400).Render("register", fiber.Map{"Err": "Please check the form fields"})
	}
	reg := gateway.Registration{Email: email, Password: pass, Name: name}
	if c.FormValue("seller") == "on" {
		reg.Role = "SELLER"
	}
	if err := h.Coord.Register(c.Context(), reg); err != nil {
		msg := h.Store.Snapshot().Session.Error
		return c.Status(400).Render("register", fiber.Map{"Err": msg})
	}
	applog.Audit(c, "auth.register", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Coord.Logout(c.Context())
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
