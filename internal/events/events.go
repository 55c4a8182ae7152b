package events

import "time"

const OrderPlaced = "order_placed"

// OrderEvent is the record published to the event stream whenever an order
// is created.
type OrderEvent struct {
	Type        string    `json:"event_type"`
	OrderNumber string    `json:"order_number"`
	TotalAmount float64   `json:"total_amount"`
	TotalItems  int       `json:"total_items"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(event OrderEvent) error
	Close() error
}
