package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order — orders table. Scoped to exactly one seller; created at
// checkout, mutated only through status transitions, never deleted.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"index;not null" json:"user_id"`
	SellerID        uint        `gorm:"index;not null" json:"seller_id"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `gorm:"type:varchar(16);default:'pending'" json:"status"`
	CreatedAt       time.Time   `json:"order_date"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	// joined for listings
	BusinessName string `gorm:"-" json:"business_name,omitempty"`
	BuyerName    string `gorm:"-" json:"buyer_name,omitempty"`
}

// OrderItem — order_items table. Price is captured at order time and
// never updated afterwards, regardless of later product edits.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	ProductName string `gorm:"-" json:"product_name,omitempty"`
}
