package state

import "shopfront/internal/domain"

// Action is a named, all-or-nothing transition of the state tree.
// apply is pure: it never mutates its input and returns the next state.
type Action interface {
	Name() string
}

type SetLoading struct {
	Slice Slice
	On    bool
}

func (SetLoading) Name() string { return "SET_LOADING" }

type SetError struct {
	Slice Slice
	Msg   string
}

func (SetError) Name() string { return "SET_ERROR" }

type SetSession struct{ User domain.User }

func (SetSession) Name() string { return "SET_SESSION" }

type Logout struct{}

func (Logout) Name() string { return "LOGOUT" }

type SetProducts struct{ Products []domain.Product }

func (SetProducts) Name() string { return "SET_PRODUCTS" }

type SetFeatured struct{ Products []domain.Product }

func (SetFeatured) Name() string { return "SET_FEATURED" }

type SetCategories struct{ Categories []domain.Category }

func (SetCategories) Name() string { return "SET_CATEGORIES" }

type SetCartItems struct{ Lines []domain.CartLine }

func (SetCartItems) Name() string { return "SET_CART_ITEMS" }

// AddToCart merges a line into the cart under the variant-uniqueness
// rule: an existing (product, size, color) line has its quantity bumped
// instead of a second line appearing.
type AddToCart struct{ Line domain.CartLine }

func (AddToCart) Name() string { return "ADD_TO_CART" }

type RemoveCartLine struct {
	ProductID   string
	Size, Color string
}

func (RemoveCartLine) Name() string { return "REMOVE_CART_LINE" }

type ClearCart struct{}

func (ClearCart) Name() string { return "CLEAR_CART" }

type SetCartTotals struct{ Totals domain.CartTotals }

func (SetCartTotals) Name() string { return "SET_CART_TOTALS" }

type SetOrders struct{ Orders []domain.Order }

func (SetOrders) Name() string { return "SET_ORDERS" }

type AddOrder struct{ Order domain.Order }

func (AddOrder) Name() string { return "ADD_ORDER" }

type SetStores struct{ Stores []domain.Store }

func (SetStores) Name() string { return "SET_STORES" }

type SetMyStore struct{ Store *domain.Store }

func (SetMyStore) Name() string { return "SET_MY_STORE" }

func apply(s State, a Action) State {
	switch a := a.(type) {
	case SetLoading:
		switch a.Slice {
		case SliceSession:
			s.Session.Loading = a.On
		case SliceCatalog:
			s.Catalog.Loading = a.On
		case SliceCart:
			s.Cart.Loading = a.On
		case SliceOrders:
			s.Orders.Loading = a.On
		case SliceShops:
			s.Shops.Loading = a.On
		}
	case SetError:
		switch a.Slice {
		case SliceSession:
			s.Session.Error = a.Msg
		case SliceCatalog:
			s.Catalog.Error = a.Msg
		case SliceCart:
			s.Cart.Error = a.Msg
		case SliceOrders:
			s.Orders.Error = a.Msg
		case SliceShops:
			s.Shops.Error = a.Msg
		}
	case SetSession:
		u := a.User
		s.Session.User = &u
		s.Session.Authenticated = true
		s.Session.Error = ""
	case Logout:
		// User-scoped slices reset; public catalog/category/store data
		// is not user-scoped and survives.
		s.Session = SessionSlice{}
		s.Cart = CartSlice{}
		s.Orders = OrdersSlice{}
		s.Shops.Mine = nil
	case SetProducts:
		s.Catalog.Products = cloneLines(a.Products)
		s.Catalog.Error = ""
	case SetFeatured:
		s.Catalog.Featured = cloneLines(a.Products)
		s.Catalog.Error = ""
	case SetCategories:
		s.Catalog.Categories = cloneLines(a.Categories)
		s.Catalog.Error = ""
	case SetCartItems:
		s.Cart.Lines = cloneLines(a.Lines)
		s.Cart.Error = ""
	case AddToCart:
		lines := cloneLines(s.Cart.Lines)
		merged := false
		for i := range lines {
			if lines[i].SameVariant(a.Line.ProductID, a.Line.Size, a.Line.Color) {
				lines[i].Qty += a.Line.Qty
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, a.Line)
		}
		s.Cart.Lines = lines
		s.Cart.Error = ""
	case RemoveCartLine:
		lines := make([]domain.CartLine, 0, len(s.Cart.Lines))
		for _, l := range s.Cart.Lines {
			if !l.SameVariant(a.ProductID, a.Size, a.Color) {
				lines = append(lines, l)
			}
		}
		s.Cart.Lines = lines
	case ClearCart:
		s.Cart.Lines = nil
		s.Cart.Totals = domain.CartTotals{}
	case SetCartTotals:
		s.Cart.Totals = a.Totals
	case SetOrders:
		s.Orders.Orders = cloneLines(a.Orders)
		s.Orders.Error = ""
	case AddOrder:
		s.Orders.Orders = append(cloneLines(s.Orders.Orders), a.Order)
	case SetStores:
		s.Shops.Stores = cloneLines(a.Stores)
		s.Shops.Error = ""
	case SetMyStore:
		if a.Store != nil {
			st := *a.Store
			s.Shops.Mine = &st
		} else {
			s.Shops.Mine = nil
		}
	}
	return s
}

func cloneLines[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
