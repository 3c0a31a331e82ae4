package stub

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"shopfront/internal/domain"
)

type account struct {
	user domain.User
	hash string
}

// Backend is an in-memory stand-in for the remote storefront API. It is
// used when no API_BASE_URL is configured and by tests that need a live
// peer for the gateway.
type Backend struct {
	mu        sync.RWMutex
	accounts  map[string]*account // keyed by lowercase email
	tokens    map[string]string   // bearer token -> user id
	products  []domain.Product
	cats      []domain.Category
	stores    []domain.Store
	carts     map[string][]domain.CartLine // user id -> lines
	orders    map[string][]domain.Order    // user id -> orders
	followers map[string]map[string]bool   // store id -> user ids
}

func NewBackend() *Backend {
	b := &Backend{
		accounts:  map[string]*account{},
		tokens:    map[string]string{},
		carts:     map[string][]domain.CartLine{},
		orders:    map[string][]domain.Order{},
		followers: map[string]map[string]bool{},
	}
	b.seed()
	return b
}

func (b *Backend) seed() {
	mk := func(id, email, name, role, raw string) {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 10)
		b.accounts[email] = &account{
			user: domain.User{ID: id, Email: email, Name: name, Role: role},
			hash: string(h),
		}
	}
	mk("u-shopper", "shopper@shopfront.test", "Sam Shopper", "USER", "Passw0rd!")
	mk("u-seller", "seller@shopfront.test", "Sana Seller", "SELLER", "Passw0rd!")
	mk("u-admin", "admin@shopfront.test", "Ada Admin", "ADMIN", "Passw0rd!")

	b.cats = []domain.Category{
		{ID: "apparel", Name: "Apparel"},
		{ID: "footwear", Name: "Footwear"},
		{ID: "accessories", Name: "Accessories"},
	}

	b.stores = []domain.Store{
		{ID: "s1", OwnerID: "u-seller", Name: "Curbside Finds", Rating: 4.6, Followers: 120, ProductCount: 2, Open: true, Secondhand: true},
		{ID: "s2", OwnerID: "u-other", Name: "North Loft", Rating: 4.2, Followers: 48, ProductCount: 2, Open: true},
	}

	b.products = []domain.Product{
		{
			ID: "p1", StoreID: "s1", Name: "Trail Hoodie", Category: "apparel",
			Description: "Heavyweight fleece hoodie.",
			Price:       89, OriginalPrice: 120, IsOnSale: true,
			Images: []string{"products/p1/main.jpg"},
			Variants: []domain.Variant{
				{Size: "M", Color: "black", Stock: 10},
				{Size: "L", Color: "black", Stock: 5},
				{Size: "M", Color: "white", Stock: 3},
			},
			Rating:    domain.Rating{Average: 4.5, Count: 37},
			CreatedAt: "2026-05-02T10:00:00Z",
		},
		{
			ID: "p2", StoreID: "s2", Name: "Court Sneaker", Category: "footwear",
			Description: "Low-top leather sneaker.",
			Price:       140,
			Images:      []string{"products/p2/main.jpg"},
			Variants: []domain.Variant{
				{Size: "42", Color: "white", Stock: 8},
				{Size: "43", Color: "white", Stock: 0},
			},
			Rating:    domain.Rating{Average: 4.1, Count: 12},
			CreatedAt: "2026-04-18T10:00:00Z",
		},
		{
			ID: "p3", StoreID: "s1", Name: "Canvas Tote", Category: "accessories",
			Description: "Everyday carry tote.",
			Price:       35,
			Images:      []string{"products/p3/main.jpg"},
			Variants: []domain.Variant{
				{Size: "one-size", Color: "natural", Stock: 25},
			},
			Rating:    domain.Rating{Average: 4.8, Count: 54},
			CreatedAt: "2026-03-30T10:00:00Z",
		},
		{
			ID: "p4", StoreID: "s2", Name: "Wool Beanie", Category: "accessories",
			Description: "Merino rib-knit beanie.",
			Price:       28, IsNew: true,
			Images: []string{"products/p4/main.jpg"},
			Variants: []domain.Variant{
				{Size: "one-size", Color: "navy", Stock: 14},
				{Size: "one-size", Color: "grey", Stock: 9},
			},
			Rating:    domain.Rating{Average: 4.3, Count: 6},
			CreatedAt: "2026-08-10T10:00:00Z",
		},
	}
}
