package models

// Product is one catalog entry. The catalog is seeded once at startup and
// never mutated, so there is no table behind it.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Details     string  `json:"details"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Farm        string  `json:"farm"`
	HarvestDate string  `json:"harvestDate"`
	Unit        string  `json:"unit"`
}
