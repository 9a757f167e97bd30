package domain

import "time"

// ScreenSetupFee is the flat surcharge applied once per non-empty order.
const ScreenSetupFee = 1.25

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusCompleted:
		return OrderStatus(s), true
	}
	return "", false
}

type Size string

const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

func ParseSize(s string) (Size, bool) {
	switch Size(s) {
	case SizeS, SizeM, SizeL, SizeXL:
		return Size(s), true
	}
	return "", false
}

// Order is a record of a completed checkout. Immutable except for Status.
type Order struct {
	OrderNumber  string      `json:"orderNumber"`
	Items        []LineItem  `json:"items"`
	CustomerName string      `json:"customerName"`
	Size         Size        `json:"size"`
	Status       OrderStatus `json:"status"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Subtotal recomputes the item total from line items. Totals are never
// stored; every reader derives them from items again.
func (o Order) Subtotal() float64 {
	sum := 0.0
	for _, item := range o.Items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return sum
}

// Fee returns the screen setup fee, applied only to non-empty orders.
func (o Order) Fee() float64 {
	if len(o.Items) == 0 {
		return 0
	}
	return ScreenSetupFee
}

func (o Order) Total() float64 {
	return o.Subtotal() + o.Fee()
}
