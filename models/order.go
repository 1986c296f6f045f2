package models

import "time"

// OrderConfirmation is the display-only result of checkout. Orders are not
// persisted or transmitted anywhere; the reference exists only for the
// confirmation screen.
type OrderConfirmation struct {
	OrderID  string     `json:"order_id"`
	Items    []CartLine `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placed_at"`
}
