package models

// Product is a catalog entry as the storefront renders it. Stock is the
// available stock (physical minus reserved), never negative.
type Product struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Rating        int     `json:"rating,omitempty"`
	Image         string  `json:"image,omitempty"`
	Category      string  `json:"category,omitempty"`
	Description   string  `json:"description,omitempty"`
	Details       string  `json:"details,omitempty"`
	Stock         int     `json:"stock"`
}
