// Package cart is the DB-backed cart aggregator: one row per
// (user, product), joined with the catalog for display and snapshot.
package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/YahirAlvarez/makeapp/internal/models"
	"github.com/YahirAlvarez/makeapp/internal/orders"
)

var (
	// ErrProductNotFound is returned when adding an unknown product.
	ErrProductNotFound = errors.New("product not found")
	// ErrOutOfStock is returned when adding a product with no stock.
	ErrOutOfStock = errors.New("product out of stock")
)

// Row is a cart line joined with its product for the cart view.
type Row struct {
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Images       string  `json:"images"`
	SellerID     uint    `json:"seller_id"`
	BusinessName string  `json:"business_name"`
}

// Store holds cart rows in the shared database.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Add puts qty of a product into the user's cart, bumping the
// quantity if the product is already there. The product must exist
// and have stock.
func (s *Store) Add(ctx context.Context, userID, productID uint, qty int) error {
	if qty < 1 {
		qty = 1
	}
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if p.StockQuantity <= 0 {
		return ErrOutOfStock
	}

	res := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return fmt.Errorf("update cart: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// Items returns the user's cart joined with product and storefront
// data, in insertion order.
func (s *Store) Items(ctx context.Context, userID uint) ([]Row, error) {
	var rows []Row
	err := s.db.WithContext(ctx).Table("cart_items").
		Select("cart_items.product_id, cart_items.quantity, products.name, products.price, products.images, products.seller_id, sellers.business_name").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Joins("LEFT JOIN sellers ON sellers.user_id = products.seller_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return rows, nil
}

// Remove deletes one product from the user's cart.
func (s *Store) Remove(ctx context.Context, userID, productID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// Clear empties the user's cart.
func (s *Store) Clear(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

// Snapshot returns the cart as checkout items with the unit prices in
// effect right now. Products deleted since they were added simply do
// not appear (the join drops them).
func (s *Store) Snapshot(ctx context.Context, userID uint) ([]orders.CheckoutItem, error) {
	rows, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]orders.CheckoutItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, orders.CheckoutItem{
			ProductID: r.ProductID,
			SellerID:  r.SellerID,
			Quantity:  r.Quantity,
			Price:     r.Price,
		})
	}
	return items, nil
}
