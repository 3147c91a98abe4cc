package models

// Seller — sellers table, a storefront profile 1:1 with a user of
// type "seller". Created on registration or lazily on first login.
type Seller struct {
	Base
	UserID              uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	BusinessName        string  `gorm:"not null" json:"business_name"`
	BusinessDescription string  `gorm:"type:text" json:"business_description"`
	StoreAddress        string  `json:"store_address"`
	PaymentMethods      string  `json:"payment_methods"`
	Rating              float64 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	TotalSales          int     `gorm:"default:0" json:"total_sales"`
}
