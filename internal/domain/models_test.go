package domain

import "testing"

func TestDiscountPercentRounds(t *testing.T) {
	p := Product{Price: 89, OriginalPrice: 120}
	// (120-89)/120*100 = 25.83..., rounds up to 26
	if got := p.DiscountPercent(); got != 26 {
		t.Fatalf("want 26, got %d", got)
	}
}

func TestDiscountPercentNotDiscounted(t *testing.T) {
	cases := []Product{
		{Price: 50},                     // no original price
		{Price: 50, OriginalPrice: 50},  // same price
		{Price: 50, OriginalPrice: 40},  // original below current
	}
	for _, p := range cases {
		if got := p.DiscountPercent(); got != 0 {
			t.Fatalf("want 0 for %+v, got %d", p, got)
		}
	}
}

func TestVariantStock(t *testing.T) {
	p := Product{Variants: []Variant{
		{Size: "M", Color: "black", Stock: 4},
		{Size: "L", Color: "black", Stock: 0},
	}}
	if p.Stock("M", "black") != 4 {
		t.Fatal("want 4")
	}
	if p.Stock("L", "black") != 0 {
		t.Fatal("want 0")
	}
	if p.Stock("XL", "red") != 0 {
		t.Fatal("unknown variant should report 0")
	}
}

func TestOrderStatusMachine(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderPending, OrderConfirmed},
		{OrderPending, OrderCancelled},
		{OrderConfirmed, OrderShipped},
		{OrderConfirmed, OrderCancelled},
		{OrderShipped, OrderDelivered},
	}
	for _, c := range allowed {
		if !c.from.CanTransition(c.to) {
			t.Fatalf("%s -> %s should be allowed", c.from, c.to)
		}
	}

	forbidden := []struct {
		from, to OrderStatus
	}{
		{OrderShipped, OrderCancelled}, // too late to cancel
		{OrderDelivered, OrderShipped},
		{OrderCancelled, OrderConfirmed},
		{OrderConfirmed, OrderPending}, // no going back
		{OrderPending, OrderDelivered}, // no skipping
	}
	for _, c := range forbidden {
		if c.from.CanTransition(c.to) {
			t.Fatalf("%s -> %s should be rejected", c.from, c.to)
		}
	}
}
