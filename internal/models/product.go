package models

// Product — products table. SellerID references the owning seller's
// user id. StockQuantity is clamped to zero at the write paths; stock
// is not decremented when an order is placed.
type Product struct {
	Base
	SellerID      uint    `gorm:"index;not null" json:"seller_id"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int     `gorm:"not null;default:0" json:"stock_quantity"`
	Images        string  `gorm:"type:text" json:"images"`

	// joined for catalog listings
	BusinessName string `gorm:"-" json:"business_name,omitempty"`
	SellerName   string `gorm:"-" json:"seller_name,omitempty"`
}
