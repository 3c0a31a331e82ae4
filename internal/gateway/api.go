package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"shopfront/internal/domain"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

type AuthResponse struct {
	User         domain.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, "POST", "/auth/login", nil, creds, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, reg Registration) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, "POST", "/auth/register", nil, reg, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, "GET", "/auth/me", nil, nil, &out)
	return out, err
}

// Logout revokes the token server-side. The caller clears the local copy
// whether or not this call succeeds.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "POST", "/auth/logout", nil, nil, nil)
}

// ProductQuery mirrors the backend's list/search parameters; zero values
// are omitted from the query string.
type ProductQuery struct {
	Page      int
	Limit     int
	Category  string
	Search    string
	MinPrice  float64
	MaxPrice  float64
	IsOnSale  bool
	IsNew     bool
	SortBy    string // price | rating | name | createdAt
	SortOrder string // asc | desc
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", fmt.Sprintf("%g", q.MinPrice))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", fmt.Sprintf("%g", q.MaxPrice))
	}
	if q.IsOnSale {
		v.Set("isOnSale", "true")
	}
	if q.IsNew {
		v.Set("isNew", "true")
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}
	return v
}

type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

func (c *Client) Products(ctx context.Context, q ProductQuery) (ProductPage, error) {
	var out ProductPage
	err := c.do(ctx, "GET", "/products", q.values(), nil, &out)
	return out, err
}

func (c *Client) SearchProducts(ctx context.Context, q ProductQuery) (ProductPage, error) {
	var out ProductPage
	err := c.do(ctx, "GET", "/products/search", q.values(), nil, &out)
	return out, err
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var out struct {
		Products []domain.Product `json:"products"`
	}
	err := c.do(ctx, "GET", "/products/featured", nil, nil, &out)
	return out.Products, err
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out struct {
		Categories []domain.Category `json:"categories"`
	}
	err := c.do(ctx, "GET", "/categories", nil, nil, &out)
	return out.Categories, err
}

type CartAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CartItemUpdate struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

type CartPayload struct {
	Items []domain.CartLine `json:"items"`
}

func (c *Client) CartAdd(ctx context.Context, req CartAddRequest) (CartPayload, error) {
	var out CartPayload
	err := c.do(ctx, "POST", "/cart/add", nil, req, &out)
	return out, err
}

func (c *Client) CartUpdateItem(ctx context.Context, productID string, upd CartItemUpdate) (CartPayload, error) {
	var out CartPayload
	err := c.do(ctx, "PUT", "/cart/item/"+url.PathEscape(productID), nil, upd, &out)
	return out, err
}

func (c *Client) CartRemoveItem(ctx context.Context, productID, size, color string) (CartPayload, error) {
	v := url.Values{}
	if size != "" {
		v.Set("size", size)
	}
	if color != "" {
		v.Set("color", color)
	}
	var out CartPayload
	err := c.do(ctx, "DELETE", "/cart/item/"+url.PathEscape(productID), v, nil, &out)
	return out, err
}

func (c *Client) CartClear(ctx context.Context) error {
	return c.do(ctx, "DELETE", "/cart/clear", nil, nil, nil)
}

type CartCalculation struct {
	domain.CartTotals
	Items []domain.CartLine `json:"items"`
}

// CartCalculate asks the backend for authoritative totals; the client does
// not compute tax or shipping on its own.
func (c *Client) CartCalculate(ctx context.Context, promoCode string) (CartCalculation, error) {
	body := map[string]string{}
	if promoCode != "" {
		body["promoCode"] = promoCode
	}
	var out CartCalculation
	err := c.do(ctx, "POST", "/cart/calculate", nil, body, &out)
	return out, err
}

type OrderRequest struct {
	ShippingAddress domain.Address `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	PromoCode       string         `json:"promoCode,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, "POST", "/orders", nil, req, &out)
	return out, err
}

type OrderPage struct {
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

func (c *Client) MyOrders(ctx context.Context, page, limit int) (OrderPage, error) {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out OrderPage
	err := c.do(ctx, "GET", "/orders/my-orders", v, nil, &out)
	return out, err
}

func (c *Client) Stores(ctx context.Context) ([]domain.Store, error) {
	var out struct {
		Stores []domain.Store `json:"stores"`
	}
	err := c.do(ctx, "GET", "/stores", nil, nil, &out)
	return out.Stores, err
}

func (c *Client) MyStore(ctx context.Context) (domain.Store, error) {
	var out domain.Store
	err := c.do(ctx, "GET", "/stores/my-store", nil, nil, &out)
	return out, err
}

func (c *Client) FollowStore(ctx context.Context, storeID string) (domain.Store, error) {
	var out domain.Store
	err := c.do(ctx, "POST", "/stores/"+url.PathEscape(storeID)+"/follow", nil, nil, &out)
	return out, err
}
