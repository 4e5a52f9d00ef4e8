package entities

// OrderStatus represents the lifecycle of an order.
//
//	pending -> ordered -> completed
//
// Transitions are not enforced; any status may be written by an update.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusOrdered, OrderStatusCompleted:
		return true
	}
	return false
}

// Order is a commitment created from a quote. FinalPrice, once set, is
// written back onto the quote's price.
type Order struct {
	ID         int         `json:"id"`
	QuoteID    int         `json:"quote_id"`
	Status     OrderStatus `json:"status"`
	FinalPrice *float64    `json:"final_price"`
}
