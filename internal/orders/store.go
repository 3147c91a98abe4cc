package orders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/YahirAlvarez/makeapp/internal/models"
	"github.com/YahirAlvarez/makeapp/internal/obs"
)

// orderColumns is the column list used when the status column is
// absent, so reads never reference it.
var orderColumns = []string{"id", "user_id", "seller_id", "total_amount", "shipping_address", "payment_method", "created_at"}

// GormStore is the gorm-backed order store. Deployments migrated from
// the legacy schema may lack the orders.status column; the store
// detects that once at startup and branches deterministically instead
// of retrying on column errors. With the column absent, writes drop
// the status value and reads report every order as pending. All other
// database errors propagate.
type GormStore struct {
	db             *gorm.DB
	supportsStatus bool
}

func NewGormStore(db *gorm.DB) *GormStore {
	s := &GormStore{
		db:             db,
		supportsStatus: db.Migrator().HasColumn(&models.Order{}, "status"),
	}
	if !s.supportsStatus {
		obs.Logger.Warn("orders.status column absent, running in schema-tolerant mode")
	}
	return s
}

// Create inserts the order together with its items in one
// transaction.
func (s *GormStore) Create(ctx context.Context, o *models.Order) error {
	tx := s.db.WithContext(ctx)
	if !s.supportsStatus {
		tx = tx.Omit("Status")
	}
	if err := tx.Create(o).Error; err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Status returns the current status of an order, pending when the
// column is absent.
func (s *GormStore) Status(ctx context.Context, orderID uint) (models.OrderStatus, error) {
	cols := []string{"id", "status"}
	if !s.supportsStatus {
		cols = []string{"id"}
	}
	var o models.Order
	err := s.db.WithContext(ctx).Select(cols).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	if o.Status == "" {
		return models.StatusPending, nil
	}
	return o.Status, nil
}

// SetStatus updates the status column. When the column is absent the
// update is logged and silently ignored, matching the legacy
// behavior.
func (s *GormStore) SetStatus(ctx context.Context, orderID uint, st models.OrderStatus) error {
	if !s.supportsStatus {
		obs.Logger.Warn("status column absent, update ignored", "order_id", orderID, "status", st)
		return nil
	}
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).Update("status", st)
	if res.Error != nil {
		return fmt.Errorf("update status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ByBuyer lists a buyer's orders, newest first, with nested items and
// the seller's business name.
func (s *GormStore) ByBuyer(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.list(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	if err := s.attachBusinessNames(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// BySeller lists a seller's orders, newest first, with nested items
// and the buyer's name.
func (s *GormStore) BySeller(ctx context.Context, sellerID uint) ([]models.Order, error) {
	orders, err := s.list(ctx, "seller_id = ?", sellerID)
	if err != nil {
		return nil, err
	}
	if err := s.attachBuyerNames(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) list(ctx context.Context, cond string, arg any) ([]models.Order, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC").Where(cond, arg)
	if !s.supportsStatus {
		q = q.Select(orderColumns)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	for i := range orders {
		if orders[i].Status == "" {
			orders[i].Status = models.StatusPending
		}
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func orderIDs(orders []models.Order) []uint {
	ids := make([]uint, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func (s *GormStore) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	type itemRow struct {
		ID          uint
		OrderID     uint
		ProductID   uint
		Quantity    int
		Price       float64
		ProductName string
	}
	var rows []itemRow
	err := s.db.WithContext(ctx).Table("order_items").
		Select("order_items.id, order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, products.name AS product_name").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id IN ?", orderIDs(orders)).
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}

	byOrder := map[uint][]models.OrderItem{}
	for _, r := range rows {
		byOrder[r.OrderID] = append(byOrder[r.OrderID], models.OrderItem{
			ID:          r.ID,
			OrderID:     r.OrderID,
			ProductID:   r.ProductID,
			Quantity:    r.Quantity,
			Price:       r.Price,
			ProductName: r.ProductName,
		})
	}
	for i := range orders {
		items := byOrder[orders[i].ID]
		if items == nil {
			items = []models.OrderItem{}
		}
		orders[i].Items = items
	}
	return nil
}

func (s *GormStore) attachBusinessNames(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	sellerIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		sellerIDs = append(sellerIDs, o.SellerID)
	}
	type row struct {
		UserID       uint
		BusinessName string
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&models.Seller{}).
		Select("user_id, business_name").
		Where("user_id IN ?", sellerIDs).
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("load seller names: %w", err)
	}
	names := map[uint]string{}
	for _, r := range rows {
		names[r.UserID] = r.BusinessName
	}
	for i := range orders {
		orders[i].BusinessName = names[orders[i].SellerID]
	}
	return nil
}

func (s *GormStore) attachBuyerNames(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	userIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		userIDs = append(userIDs, o.UserID)
	}
	type row struct {
		ID       uint
		FullName string
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("id, full_name").
		Where("id IN ?", userIDs).
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("load buyer names: %w", err)
	}
	names := map[uint]string{}
	for _, r := range rows {
		names[r.ID] = r.FullName
	}
	for i := range orders {
		orders[i].BuyerName = names[orders[i].UserID]
	}
	return nil
}
