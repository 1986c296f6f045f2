package models

import "time"

// CartLine is one product's entry in a cart. Name, price, image and unit are
// snapshotted from the product at add time. The JSON field names are the
// persisted storage format of the slot value: a plain array of these objects,
// no version tag.
type CartLine struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
}

// CartSlot is the database row behind the gorm storage driver: one serialized
// cart per key.
type CartSlot struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}
