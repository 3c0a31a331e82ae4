package stub

import (
	"testing"

	"shopfront/internal/domain"
)

func TestCartAddMergesVariant(t *testing.T) {
	b := NewBackend()
	if _, err := b.addToCart("u1", "p1", 1, "M", "black"); err != nil {
		t.Fatal(err)
	}
	lines, err := b.addToCart("u1", "p1", 2, "M", "black")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Qty != 3 {
		t.Fatalf("want one merged line qty 3, got %+v", lines)
	}

	lines, _ = b.addToCart("u1", "p1", 1, "L", "black")
	if len(lines) != 2 {
		t.Fatalf("distinct variant should add a line, got %+v", lines)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	b := NewBackend()
	if _, err := b.addToCart("u1", "nope", 1, "M", "black"); err != errNoProduct {
		t.Fatalf("want errNoProduct, got %v", err)
	}
}

func TestTotals(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: "p1", Price: 89, Qty: 3}, // 267
	}
	tt := totalsFor(lines, "")
	if tt.Subtotal != 267 {
		t.Fatalf("subtotal %v", tt.Subtotal)
	}
	if tt.Shipping != 0 {
		t.Fatalf("shipping waived above 100, got %v", tt.Shipping)
	}
	if tt.Tax != 21.36 {
		t.Fatalf("tax %v", tt.Tax)
	}
	if tt.Total != 288.36 {
		t.Fatalf("total %v", tt.Total)
	}
}

func TestTotalsSmallOrderShipsAndPromoApplies(t *testing.T) {
	lines := []domain.CartLine{{ProductID: "p3", Price: 35, Qty: 1}}
	tt := totalsFor(lines, "WELCOME10")
	if tt.Shipping != 10 {
		t.Fatalf("want flat shipping, got %v", tt.Shipping)
	}
	if tt.Discount != 3.5 {
		t.Fatalf("want 10%% promo discount, got %v", tt.Discount)
	}
	// 35 + 10 + 2.80 - 3.50
	if tt.Total != 44.3 {
		t.Fatalf("total %v", tt.Total)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	tt := totalsFor(nil, "")
	if tt.Subtotal != 0 || tt.Shipping != 0 || tt.Total != 0 {
		t.Fatalf("empty cart should be all zeros: %+v", tt)
	}
}

func TestOrderLifecycle(t *testing.T) {
	b := NewBackend()
	_, _ = b.addToCart("u1", "p1", 1, "M", "black")
	o, err := b.createOrder("u1", domain.Address{Name: "T"}, "card", "")
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != domain.OrderPending {
		t.Fatalf("orders start pending, got %s", o.Status)
	}
	if len(b.carts["u1"]) != 0 {
		t.Fatal("order creation consumes the cart")
	}

	for _, s := range []domain.OrderStatus{domain.OrderConfirmed, domain.OrderShipped, domain.OrderDelivered} {
		if _, err := b.setOrderStatus(o.ID, s); err != nil {
			t.Fatalf("advance to %s: %v", s, err)
		}
	}
	// delivered is terminal
	if _, err := b.setOrderStatus(o.ID, domain.OrderCancelled); err == nil {
		t.Fatal("delivered order must not cancel")
	}
}

func TestOrderCancelWindow(t *testing.T) {
	b := NewBackend()
	_, _ = b.addToCart("u1", "p1", 1, "M", "black")
	o, _ := b.createOrder("u1", domain.Address{}, "card", "")

	if _, err := b.setOrderStatus(o.ID, domain.OrderCancelled); err != nil {
		t.Fatalf("pending order should cancel: %v", err)
	}
	if _, err := b.setOrderStatus(o.ID, domain.OrderConfirmed); err == nil {
		t.Fatal("cancelled order must stay cancelled")
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	b := NewBackend()
	if _, err := b.createOrder("u1", domain.Address{}, "card", ""); err != errEmptyCart {
		t.Fatalf("want errEmptyCart, got %v", err)
	}
}

func TestListProductsFilterAndSort(t *testing.T) {
	b := NewBackend()

	sale, _ := b.listProducts(catalogQuery{isOnSale: true})
	for _, p := range sale {
		if !p.IsOnSale {
			t.Fatalf("filter leak: %+v", p)
		}
	}
	if len(sale) == 0 {
		t.Fatal("seed contains at least one sale item")
	}

	acc, _ := b.listProducts(catalogQuery{category: "accessories", sortBy: "price", sortOrder: "desc"})
	if len(acc) < 2 {
		t.Fatalf("want the accessory seeds, got %d", len(acc))
	}
	for i := 1; i < len(acc); i++ {
		if acc[i].Price > acc[i-1].Price {
			t.Fatal("want descending price order")
		}
	}

	hits, total := b.listProducts(catalogQuery{search: "hoodie"})
	if total != 1 || hits[0].ID != "p1" {
		t.Fatalf("search miss: %+v", hits)
	}

	cheap, _ := b.listProducts(catalogQuery{maxPrice: 30})
	for _, p := range cheap {
		if p.Price > 30 {
			t.Fatalf("price filter leak: %+v", p)
		}
	}
}

func TestListProductsPagination(t *testing.T) {
	b := NewBackend()
	page1, total := b.listProducts(catalogQuery{page: 1, limit: 2})
	page2, _ := b.listProducts(catalogQuery{page: 2, limit: 2})
	if total != 4 {
		t.Fatalf("want 4 seeds, got %d", total)
	}
	if len(page1) != 2 || len(page2) != 2 {
		t.Fatalf("bad page sizes: %d/%d", len(page1), len(page2))
	}
	if page1[0].ID == page2[0].ID {
		t.Fatal("pages must not overlap")
	}
}

func TestFollowToggles(t *testing.T) {
	b := NewBackend()
	before := b.storeList()[0]

	after, ok := b.follow(before.ID, "u1")
	if !ok || after.Followers != before.Followers+1 {
		t.Fatalf("follow should increment: %+v", after)
	}
	again, _ := b.follow(before.ID, "u1")
	if again.Followers != before.Followers {
		t.Fatalf("second follow should undo: %+v", again)
	}
}
