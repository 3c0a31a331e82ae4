package state

import (
	"testing"

	"shopfront/internal/domain"
)

func line(pid, size, color string, qty int) domain.CartLine {
	return domain.CartLine{ProductID: pid, Name: pid, Price: 10, Qty: qty, Size: size, Color: color}
}

func TestAddToCartMergesSameVariant(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{Line: line("p1", "M", "black", 1)})
	st.Dispatch(AddToCart{Line: line("p1", "M", "black", 2)})

	snap := st.Snapshot()
	if len(snap.Cart.Lines) != 1 {
		t.Fatalf("want one line, got %d", len(snap.Cart.Lines))
	}
	if snap.Cart.Lines[0].Qty != 3 {
		t.Fatalf("want qty 3, got %d", snap.Cart.Lines[0].Qty)
	}
}

func TestAddToCartDistinctVariants(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{Line: line("p1", "M", "black", 1)})
	st.Dispatch(AddToCart{Line: line("p1", "L", "black", 1)})
	st.Dispatch(AddToCart{Line: line("p1", "M", "white", 1)})

	if n := len(st.Snapshot().Cart.Lines); n != 3 {
		t.Fatalf("want 3 lines, got %d", n)
	}
}

func TestLogoutPreservesPublicData(t *testing.T) {
	st := NewStore()
	u := domain.User{ID: "u1", Email: "a@b.co"}
	st.Dispatch(
		SetSession{User: u},
		SetCategories{Categories: []domain.Category{{ID: "apparel", Name: "Apparel"}}},
		SetStores{Stores: []domain.Store{{ID: "s1", Name: "Loft"}}},
		SetProducts{Products: []domain.Product{{ID: "p1"}}},
		AddToCart{Line: line("p1", "M", "black", 2)},
		SetOrders{Orders: []domain.Order{{ID: "o1"}}},
	)

	st.Dispatch(Logout{})

	snap := st.Snapshot()
	if snap.Session.User != nil || snap.Session.Authenticated {
		t.Fatal("session should be cleared")
	}
	if len(snap.Cart.Lines) != 0 {
		t.Fatal("cart should be cleared")
	}
	if len(snap.Orders.Orders) != 0 {
		t.Fatal("orders should be cleared")
	}
	if len(snap.Catalog.Categories) != 1 || len(snap.Shops.Stores) != 1 || len(snap.Catalog.Products) != 1 {
		t.Fatal("public catalog/category/store data must survive logout")
	}
}

func TestSuccessfulFetchClearsSliceError(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetError{Slice: SliceCart, Msg: "boom"})
	st.Dispatch(SetCartItems{Lines: []domain.CartLine{line("p1", "M", "black", 1)}})

	if e := st.Snapshot().Cart.Error; e != "" {
		t.Fatalf("error should clear on fresh data, got %q", e)
	}
}

func TestLoadingFlagPerSlice(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetLoading{Slice: SliceOrders, On: true})

	snap := st.Snapshot()
	if !snap.Orders.Loading {
		t.Fatal("orders should be loading")
	}
	if snap.Cart.Loading || snap.Session.Loading || snap.Catalog.Loading || snap.Shops.Loading {
		t.Fatal("other slices must be untouched")
	}

	st.Dispatch(SetLoading{Slice: SliceOrders, On: false})
	if st.Snapshot().Orders.Loading {
		t.Fatal("orders loading should drop")
	}
}

// Snapshots must not observe later dispatches.
func TestSnapshotIsolation(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{Line: line("p1", "M", "black", 1)})
	before := st.Snapshot()

	st.Dispatch(AddToCart{Line: line("p1", "M", "black", 5)})

	if before.Cart.Lines[0].Qty != 1 {
		t.Fatalf("old snapshot mutated: qty %d", before.Cart.Lines[0].Qty)
	}
	if st.Snapshot().Cart.Lines[0].Qty != 6 {
		t.Fatal("new state should hold merged qty")
	}
}

func TestRemoveCartLineTargetsVariant(t *testing.T) {
	st := NewStore()
	st.Dispatch(
		AddToCart{Line: line("p1", "M", "black", 1)},
		AddToCart{Line: line("p1", "L", "black", 1)},
	)
	st.Dispatch(RemoveCartLine{ProductID: "p1", Size: "M", Color: "black"})

	snap := st.Snapshot()
	if len(snap.Cart.Lines) != 1 || snap.Cart.Lines[0].Size != "L" {
		t.Fatalf("wrong line removed: %+v", snap.Cart.Lines)
	}
}

func TestVersionAdvances(t *testing.T) {
	st := NewStore()
	v0 := st.Version()
	st.Dispatch(SetLoading{Slice: SliceCart, On: true})
	if st.Version() <= v0 {
		t.Fatal("version should advance on dispatch")
	}
}
