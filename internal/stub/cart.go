package stub

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopfront/internal/domain"
)

var (
	errNoProduct = errors.New("product not found")
	errNoLine    = errors.New("cart item not found")
	errBadQty    = errors.New("quantity must be at least 1")
	errEmptyCart = errors.New("cart is empty")
)

func (b *Backend) product(id string) (domain.Product, bool) {
	for _, p := range b.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// addToCart merges under the variant-uniqueness rule.
func (b *Backend) addToCart(userID, productID string, qty int, size, color string) ([]domain.CartLine, error) {
	if qty < 1 {
		return nil, errBadQty
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.product(productID)
	if !ok {
		return nil, errNoProduct
	}

	lines := b.carts[userID]
	merged := false
	for i := range lines {
		if lines[i].SameVariant(productID, size, color) {
			lines[i].Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, domain.CartLine{
			ProductID: p.ID, Name: p.Name, Price: p.Price,
			Qty: qty, Size: size, Color: color,
		})
	}
	b.carts[userID] = lines
	return cloneCart(lines), nil
}

func (b *Backend) updateCartItem(userID, productID string, qty int, size, color string) ([]domain.CartLine, error) {
	if qty < 1 {
		return nil, errBadQty
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := b.carts[userID]
	for i := range lines {
		if lines[i].SameVariant(productID, size, color) {
			lines[i].Qty = qty
			return cloneCart(lines), nil
		}
	}
	return nil, errNoLine
}

func (b *Backend) removeCartItem(userID, productID string, size, color string) []domain.CartLine {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := b.carts[userID]
	out := lines[:0]
	for _, l := range lines {
		if !l.SameVariant(productID, size, color) {
			out = append(out, l)
		}
	}
	b.carts[userID] = out
	return cloneCart(out)
}

func (b *Backend) clearCart(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.carts, userID)
}

// calculate derives authoritative totals: flat 10 shipping waived above
// 100, 8% tax on the subtotal, WELCOME10 takes 10% off the subtotal.
func (b *Backend) calculate(userID, promoCode string) (domain.CartTotals, []domain.CartLine) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return totalsFor(b.carts[userID], promoCode), cloneCart(b.carts[userID])
}

func totalsFor(lines []domain.CartLine, promoCode string) domain.CartTotals {
	t := domain.CartTotals{}
	for _, l := range lines {
		t.Subtotal += l.Price * float64(l.Qty)
	}
	t.Subtotal = round2(t.Subtotal)
	if len(lines) > 0 && t.Subtotal <= 100 {
		t.Shipping = 10
	}
	t.Tax = round2(t.Subtotal * 0.08)
	if strings.EqualFold(promoCode, "WELCOME10") {
		t.Discount = round2(t.Subtotal * 0.10)
	}
	t.Total = round2(t.Subtotal + t.Shipping + t.Tax - t.Discount)
	return t
}

func (b *Backend) createOrder(userID string, addr domain.Address, payment, promoCode string) (domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := b.carts[userID]
	if len(lines) == 0 {
		return domain.Order{}, errEmptyCart
	}
	o := domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Lines:           cloneCart(lines),
		Totals:          totalsFor(lines, promoCode),
		Status:          domain.OrderPending,
		ShippingAddress: addr,
		PaymentMethod:   payment,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	b.orders[userID] = append(b.orders[userID], o)
	delete(b.carts, userID)
	return o, nil
}

func (b *Backend) myOrders(userID string, page, limit int) ([]domain.Order, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	all := b.orders[userID]
	total := len(all)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= total {
		return nil, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]domain.Order, end-start)
	copy(out, all[start:end])
	return out, total
}

// setOrderStatus enforces the forward-only status machine.
func (b *Backend) setOrderStatus(orderID string, to domain.OrderStatus) (domain.Order, error) {
	if !to.Valid() {
		return domain.Order{}, errors.New("unknown order status")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for uid, list := range b.orders {
		for i := range list {
			if list[i].ID != orderID {
				continue
			}
			if !list[i].Status.CanTransition(to) {
				return domain.Order{}, errors.New("illegal status transition " + string(list[i].Status) + " -> " + string(to))
			}
			list[i].Status = to
			b.orders[uid] = list
			return list[i], nil
		}
	}
	return domain.Order{}, errors.New("order not found")
}

func cloneCart(in []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(in))
	copy(out, in)
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
