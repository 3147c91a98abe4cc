package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/YahirAlvarez/makeapp/internal/models"
	"github.com/YahirAlvarez/makeapp/internal/obs"
)

var (
	// ErrEmptyCart is returned when checkout finds nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderNotFound is returned for transitions on unknown orders.
	ErrOrderNotFound = errors.New("order not found")
)

// Store persists orders. Implemented by the gorm-backed store; tests
// substitute fakes.
type Store interface {
	Create(ctx context.Context, o *models.Order) error
	ByBuyer(ctx context.Context, userID uint) ([]models.Order, error)
	BySeller(ctx context.Context, sellerID uint) ([]models.Order, error)
	Status(ctx context.Context, orderID uint) (models.OrderStatus, error)
	SetStatus(ctx context.Context, orderID uint, st models.OrderStatus) error
}

// CartSource supplies the buyer's cart snapshot at checkout and
// clears it afterwards.
type CartSource interface {
	Snapshot(ctx context.Context, userID uint) ([]CheckoutItem, error)
	Clear(ctx context.Context, userID uint) error
}

// Service drives the order lifecycle: cart→orders at checkout and
// status transitions afterwards.
type Service struct {
	store Store
	cart  CartSource
}

func NewService(store Store, cart CartSource) *Service {
	return &Service{store: store, cart: cart}
}

// Checkout converts the buyer's cart into one pending order per
// seller. Sub-orders are created sequentially without rollback: if
// one fails, earlier sub-orders stay created, the cart stays
// populated and the ids created so far are returned alongside the
// error. The cart is cleared only after every sub-order succeeded.
func (s *Service) Checkout(ctx context.Context, userID uint, shippingAddress, paymentMethod string) ([]uint, error) {
	items, err := s.cart.Snapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	drafts := SplitBySeller(items)
	if len(drafts) == 0 {
		return nil, ErrEmptyCart
	}

	var ids []uint
	for _, d := range drafts {
		o := models.Order{
			UserID:          userID,
			SellerID:        d.SellerID,
			TotalAmount:     d.Total,
			ShippingAddress: shippingAddress,
			PaymentMethod:   paymentMethod,
			Status:          models.StatusPending,
			Items:           d.Items,
		}
		if err := s.store.Create(ctx, &o); err != nil {
			obs.Logger.Error("checkout partial failure",
				"user_id", userID, "seller_id", d.SellerID, "created", len(ids), "err", err)
			return ids, fmt.Errorf("create order for seller %d: %w", d.SellerID, err)
		}
		ids = append(ids, o.ID)
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		// Orders exist; a stale cart is the lesser problem.
		obs.Logger.Error("clear cart after checkout", "user_id", userID, "err", err)
	}
	obs.Logger.Info("checkout", "user_id", userID, "orders", len(ids))
	return ids, nil
}

// TransitionResult reports what a successful transition did.
type TransitionResult struct {
	From, To     models.OrderStatus
	PromptReview bool
}

// Transition moves an order to the target status after validating the
// move against the current status and the acting role. On rejection
// the order is left untouched and the reason is returned.
func (s *Service) Transition(ctx context.Context, orderID uint, target models.OrderStatus, role models.Role) (TransitionResult, error) {
	current, err := s.store.Status(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := CanTransition(current, target, role); err != nil {
		return TransitionResult{}, err
	}
	if err := s.store.SetStatus(ctx, orderID, target); err != nil {
		return TransitionResult{}, err
	}

	res := TransitionResult{From: current, To: target}
	if target == models.StatusDelivered {
		// Informational only: the buyer is prompted for a review.
		res.PromptReview = true
		obs.Logger.Info("order delivered, review prompt", "order_id", orderID)
	}
	obs.Logger.Info("order transition", "order_id", orderID, "from", current, "to", target, "role", role)
	return res, nil
}

// BuyerOrders lists a buyer's orders with nested items.
func (s *Service) BuyerOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.store.ByBuyer(ctx, userID)
}

// SellerOrders lists a seller's orders with nested items and buyer names.
func (s *Service) SellerOrders(ctx context.Context, sellerID uint) ([]models.Order, error) {
	return s.store.BySeller(ctx, sellerID)
}

// Status returns an order's current status.
func (s *Service) Status(ctx context.Context, orderID uint) (models.OrderStatus, error) {
	return s.store.Status(ctx, orderID)
}

// Create stores a single-seller order as posted by legacy clients
// that split the cart themselves.
func (s *Service) Create(ctx context.Context, o *models.Order) error {
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	return s.store.Create(ctx, o)
}
