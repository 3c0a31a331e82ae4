package stub

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopfront/internal/domain"
)

// App builds the stub API as a Fiber app speaking the same JSON contract
// as the real backend.
func (b *Backend) App() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Post("/auth/login", b.handleLogin)
	app.Post("/auth/register", b.handleRegister)
	app.Get("/auth/me", b.requireUser(func(c *fiber.Ctx, u domain.User) error {
		return c.JSON(u)
	}))
	app.Post("/auth/logout", b.handleLogout)

	app.Get("/products", b.handleProducts)
	app.Get("/products/search", b.handleProducts)
	app.Get("/products/featured", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"products": b.featured()})
	})
	app.Get("/categories", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"categories": b.cats})
	})

	app.Post("/cart/add", b.requireUser(b.handleCartAdd))
	app.Put("/cart/item/:id", b.requireUser(b.handleCartUpdate))
	app.Delete("/cart/clear", b.requireUser(func(c *fiber.Ctx, u domain.User) error {
		b.clearCart(u.ID)
		return c.JSON(fiber.Map{"items": []domain.CartLine{}})
	}))
	app.Delete("/cart/item/:id", b.requireUser(b.handleCartRemove))
	app.Post("/cart/calculate", b.requireUser(b.handleCalculate))

	app.Post("/orders", b.requireUser(b.handleCreateOrder))
	app.Get("/orders/my-orders", b.requireUser(b.handleMyOrders))
	app.Post("/orders/:id/status", b.requireAdmin(b.handleOrderStatus))

	app.Get("/stores", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"stores": b.storeList()})
	})
	app.Get("/stores/my-store", b.requireUser(func(c *fiber.Ctx, u domain.User) error {
		s, ok := b.storeByOwner(u.ID)
		if !ok {
			return fail(c, fiber.StatusNotFound, "store not found")
		}
		return c.JSON(s)
	}))
	app.Post("/stores/:id/follow", b.requireUser(func(c *fiber.Ctx, u domain.User) error {
		s, ok := b.follow(c.Params("id"), u.ID)
		if !ok {
			return fail(c, fiber.StatusNotFound, "store not found")
		}
		return c.JSON(s)
	}))

	return app
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (b *Backend) bearerUser(c *fiber.Ctx) (domain.User, bool) {
	h := c.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return domain.User{}, false
	}
	tok := strings.TrimPrefix(h, "Bearer ")
	b.mu.RLock()
	defer b.mu.RUnlock()
	uid, ok := b.tokens[tok]
	if !ok {
		return domain.User{}, false
	}
	for _, a := range b.accounts {
		if a.user.ID == uid {
			return a.user, true
		}
	}
	return domain.User{}, false
}

func (b *Backend) requireUser(h func(*fiber.Ctx, domain.User) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := b.bearerUser(c)
		if !ok {
			return fail(c, fiber.StatusUnauthorized, "authentication required")
		}
		return h(c, u)
	}
}

func (b *Backend) requireAdmin(h func(*fiber.Ctx, domain.User) error) fiber.Handler {
	return b.requireUser(func(c *fiber.Ctx, u domain.User) error {
		if !u.IsAdmin() {
			return fail(c, fiber.StatusForbidden, "admin only")
		}
		return h(c, u)
	})
}

func (b *Backend) issueToken(userID string) (token, refresh string) {
	token, refresh = uuid.NewString(), uuid.NewString()
	b.mu.Lock()
	b.tokens[token] = userID
	b.mu.Unlock()
	return token, refresh
}

func (b *Backend) authResponse(c *fiber.Ctx, u domain.User) error {
	tok, refresh := b.issueToken(u.ID)
	return c.JSON(fiber.Map{
		"user":         u,
		"token":        tok,
		"refreshToken": refresh,
		"expiresIn":    3600,
	})
}

func (b *Backend) handleLogin(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	b.mu.RLock()
	acct, ok := b.accounts[strings.ToLower(in.Email)]
	b.mu.RUnlock()
	if !ok || bcrypt.CompareHashAndPassword([]byte(acct.hash), []byte(in.Password)) != nil {
		return fail(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	return b.authResponse(c, acct.user)
}

func (b *Backend) handleRegister(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.Name == "" {
		return fail(c, fiber.StatusBadRequest, "email, password and name are required")
	}
	role := in.Role
	if role != "SELLER" {
		role = "USER"
	}

	b.mu.Lock()
	if _, exists := b.accounts[email]; exists {
		b.mu.Unlock()
		return fail(c, fiber.StatusConflict, "email already registered")
	}
	h, _ := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	u := domain.User{ID: uuid.NewString(), Email: email, Name: in.Name, Role: role}
	b.accounts[email] = &account{user: u, hash: string(h)}
	b.mu.Unlock()

	return b.authResponse(c, u)
}

func (b *Backend) handleLogout(c *fiber.Ctx) error {
	h := c.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		b.mu.Lock()
		delete(b.tokens, strings.TrimPrefix(h, "Bearer "))
		b.mu.Unlock()
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (b *Backend) handleProducts(c *fiber.Ctx) error {
	q := catalogQuery{
		page:      c.QueryInt("page"),
		limit:     c.QueryInt("limit"),
		category:  c.Query("category"),
		search:    c.Query("search"),
		isOnSale:  c.Query("isOnSale") == "true",
		isNew:     c.Query("isNew") == "true",
		sortBy:    c.Query("sortBy"),
		sortOrder: c.Query("sortOrder"),
	}
	q.minPrice, _ = strconv.ParseFloat(c.Query("minPrice"), 64)
	q.maxPrice, _ = strconv.ParseFloat(c.Query("maxPrice"), 64)

	items, total := b.listProducts(q)
	page, limit := q.page, q.limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return c.JSON(fiber.Map{"products": items, "total": total, "page": page, "limit": limit})
}

func (b *Backend) handleCartAdd(c *fiber.Ctx, u domain.User) error {
	var in struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	lines, err := b.addToCart(u.ID, in.ProductID, in.Quantity, in.Size, in.Color)
	if err == errNoProduct {
		return fail(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"items": lines})
}

func (b *Backend) handleCartUpdate(c *fiber.Ctx, u domain.User) error {
	var in struct {
		Quantity int    `json:"quantity"`
		Size     string `json:"size"`
		Color    string `json:"color"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	lines, err := b.updateCartItem(u.ID, c.Params("id"), in.Quantity, in.Size, in.Color)
	if err == errNoLine {
		return fail(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"items": lines})
}

func (b *Backend) handleCartRemove(c *fiber.Ctx, u domain.User) error {
	lines := b.removeCartItem(u.ID, c.Params("id"), c.Query("size"), c.Query("color"))
	return c.JSON(fiber.Map{"items": lines})
}

func (b *Backend) handleCalculate(c *fiber.Ctx, u domain.User) error {
	var in struct {
		PromoCode string `json:"promoCode"`
	}
	_ = c.BodyParser(&in) // body is optional
	totals, items := b.calculate(u.ID, in.PromoCode)
	return c.JSON(fiber.Map{
		"subtotal": totals.Subtotal,
		"shipping": totals.Shipping,
		"tax":      totals.Tax,
		"discount": totals.Discount,
		"total":    totals.Total,
		"items":    items,
	})
}

func (b *Backend) handleCreateOrder(c *fiber.Ctx, u domain.User) error {
	var in struct {
		ShippingAddress domain.Address `json:"shippingAddress"`
		PaymentMethod   string         `json:"paymentMethod"`
		PromoCode       string         `json:"promoCode"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	o, err := b.createOrder(u.ID, in.ShippingAddress, in.PaymentMethod, in.PromoCode)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (b *Backend) handleMyOrders(c *fiber.Ctx, u domain.User) error {
	page, limit := c.QueryInt("page", 1), c.QueryInt("limit", 20)
	orders, total := b.myOrders(u.ID, page, limit)
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(fiber.Map{"orders": orders, "total": total, "page": page, "limit": limit})
}

func (b *Backend) handleOrderStatus(c *fiber.Ctx, _ domain.User) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	o, err := b.setOrderStatus(c.Params("id"), domain.OrderStatus(in.Status))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(o)
}
