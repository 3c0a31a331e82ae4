package domain

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// next maps each status to the statuses it may move to. The machine is
// strictly forward; cancellation is only possible before shipping.
var next = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
	OrderDelivered: {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := next[s]
	return ok
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, t := range next[s] {
		if t == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Lines           []CartLine  `json:"items"` // snapshot taken at checkout
	Totals          CartTotals  `json:"totals"`
	Status          OrderStatus `json:"status"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	CreatedAt       string      `json:"createdAt"`
}
