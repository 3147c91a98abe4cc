package models

// CartItem — cart table. One row per (user, product); repeat adds
// bump the quantity instead of inserting a second row. Rows are
// deleted on remove and on successful checkout.
type CartItem struct {
	Base
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`
}
