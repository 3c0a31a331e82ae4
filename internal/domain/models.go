package domain

import "math"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Variant is one purchasable (size, color) combination with its own stock.
type Variant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Product struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"storeId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"` // 0 when not discounted
	Images        []string  `json:"images"`
	Variants      []Variant `json:"variants"`
	Rating        Rating    `json:"rating"`
	IsNew         bool      `json:"isNew"`
	IsOnSale      bool      `json:"isOnSale"`
	CreatedAt     string    `json:"createdAt"`
}

// DiscountPercent is the rounded percentage off the original price,
// or 0 when the product is not discounted.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

// Stock returns the stock count for a specific variant, 0 if unknown.
func (p Product) Stock(size, color string) int {
	for _, v := range p.Variants {
		if v.Size == size && v.Color == color {
			return v.Stock
		}
	}
	return 0
}

type Store struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	Followers    int     `json:"followers"`
	ProductCount int     `json:"productCount"`
	Open         bool    `json:"open"`
	Secondhand   bool    `json:"secondhand"`
}

// CartLine is one cart entry. At most one line may exist per
// (ProductID, Size, Color) tuple; re-adding the same tuple bumps Qty.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

func (l CartLine) SameVariant(productID, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

// CartTotals is the server-computed breakdown. The client never derives
// these itself; they come from POST /cart/calculate.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}
