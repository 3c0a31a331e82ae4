// Package state holds the in-memory domain state tree. The tree is split
// into independent slices, each carrying its own loading flag and error
// string, and is only ever changed through named actions applied by a
// pure reducer.
package state

import "shopfront/internal/domain"

type Slice string

const (
	SliceSession Slice = "session"
	SliceCatalog Slice = "catalog"
	SliceCart    Slice = "cart"
	SliceOrders  Slice = "orders"
	SliceShops   Slice = "shops"
)

type SessionSlice struct {
	User          *domain.User
	Authenticated bool
	Loading       bool
	Error         string
}

type CatalogSlice struct {
	Products   []domain.Product
	Featured   []domain.Product
	Categories []domain.Category
	Loading    bool
	Error      string
}

type CartSlice struct {
	Lines   []domain.CartLine
	Totals  domain.CartTotals
	Loading bool
	Error   string
}

type OrdersSlice struct {
	Orders  []domain.Order
	Loading bool
	Error   string
}

// ShopsSlice holds public store listings plus the seller's own store.
type ShopsSlice struct {
	Stores  []domain.Store
	Mine    *domain.Store
	Loading bool
	Error   string
}

type State struct {
	Session SessionSlice
	Catalog CatalogSlice
	Cart    CartSlice
	Orders  OrdersSlice
	Shops   ShopsSlice
}

func initial() State { return State{} }
