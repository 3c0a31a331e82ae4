package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"shopfront/internal/config"
	"shopfront/internal/coordinator"
	"shopfront/internal/gateway"
	"shopfront/internal/http/handlers"
	"shopfront/internal/localstore"
	applog "shopfront/internal/log"
	"shopfront/internal/state"
	"shopfront/internal/stub"
	"shopfront/internal/theme"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	local, err := localstore.Open(cfg.StateDB)
	if err != nil {
		log.Fatal(err)
	}

	// With no remote configured, serve the bundled stub backend so the
	// storefront works offline.
	base := cfg.APIBaseURL
	if base == "" {
		backend := stub.NewBackend()
		go func() {
			log.Printf("[stub] backend on http://%s", cfg.StubAddr)
			log.Fatal(backend.App().Listen(cfg.StubAddr))
		}()
		base = "http://" + cfg.StubAddr
	}

	// Core wiring: gateway -> store -> coordinators -> theme
	gw := gateway.NewClient(base, local)
	store := state.NewStore()
	coord := coordinator.New(gw, store, local)
	themes := theme.NewManager(local)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := coord.RestoreSession(ctx); err != nil {
		log.Printf("[warn] session restore: %v", err)
	}
	cancel()

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(coord, store, themes)

	// Public pages
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.CatalogHandler.Search)
	app.Get("/category/:id", deps.CatalogHandler.List)
	app.Get("/product/:id", deps.CatalogHandler.Detail)
	app.Get("/stores", deps.StoreHandler.List)

	// Cart & Orders
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Get("/checkout", handlers.RequireUser(store), deps.OrderHandler.Checkout)
	app.Post("/orders", handlers.RequireUser(store), deps.OrderHandler.Place)
	app.Get("/orders", handlers.RequireUser(store), deps.OrderHandler.History)
	app.Post("/stores/follow", handlers.RequireUser(store), deps.StoreHandler.Follow)

	// Auth routes (login throttled)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	app.Get("/register", deps.AuthHandler.RegisterForm)
	app.Post("/register", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Admin: site-wide theming
	admin := app.Group("/admin", handlers.RequireAdmin(store))
	admin.Get("/theme", deps.ThemeHandler.Page)
	admin.Post("/theme/preset", deps.ThemeHandler.ApplyPreset)
	admin.Post("/theme/colors", deps.ThemeHandler.UpdateColors)
	admin.Get("/theme/export", deps.ThemeHandler.Export)
	admin.Post("/theme/import", deps.ThemeHandler.Import)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
