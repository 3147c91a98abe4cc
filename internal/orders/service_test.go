package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YahirAlvarez/makeapp/internal/models"
)

// fakeStore keeps orders in memory. With statusColumn=false it honors
// the schema-tolerant store contract: status writes are dropped and
// reads report pending.
type fakeStore struct {
	nextID       uint
	orders       map[uint]*models.Order
	failSeller   uint
	statusColumn bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{orders: map[uint]*models.Order{}, statusColumn: true}
}

func (f *fakeStore) Create(_ context.Context, o *models.Order) error {
	if f.failSeller != 0 && o.SellerID == f.failSeller {
		return errors.New("insert failed")
	}
	f.nextID++
	o.ID = f.nextID
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	for i := range cp.Items {
		cp.Items[i].OrderID = o.ID
	}
	if !f.statusColumn {
		cp.Status = ""
	}
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeStore) ByBuyer(_ context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for id := uint(1); id <= f.nextID; id++ {
		o, ok := f.orders[id]
		if !ok || o.UserID != userID {
			continue
		}
		cp := *o
		if cp.Status == "" {
			cp.Status = models.StatusPending
		}
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeStore) BySeller(_ context.Context, sellerID uint) ([]models.Order, error) {
	var out []models.Order
	for id := uint(1); id <= f.nextID; id++ {
		o, ok := f.orders[id]
		if !ok || o.SellerID != sellerID {
			continue
		}
		cp := *o
		if cp.Status == "" {
			cp.Status = models.StatusPending
		}
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeStore) Status(_ context.Context, orderID uint) (models.OrderStatus, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return "", ErrOrderNotFound
	}
	if !f.statusColumn || o.Status == "" {
		return models.StatusPending, nil
	}
	return o.Status, nil
}

func (f *fakeStore) SetStatus(_ context.Context, orderID uint, st models.OrderStatus) error {
	o, ok := f.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if !f.statusColumn {
		return nil
	}
	o.Status = st
	return nil
}

type fakeCart struct {
	items   []CheckoutItem
	cleared bool
}

func (f *fakeCart) Snapshot(context.Context, uint) ([]CheckoutItem, error) {
	return append([]CheckoutItem(nil), f.items...), nil
}

func (f *fakeCart) Clear(context.Context, uint) error {
	f.cleared = true
	f.items = nil
	return nil
}

func TestCheckoutSingleSeller(t *testing.T) {
	store := newFakeStore()
	crt := &fakeCart{items: []CheckoutItem{
		{ProductID: 7, SellerID: 1, Quantity: 1, Price: 9.99},
	}}
	svc := NewService(store, crt)

	ids, err := svc.Checkout(context.Background(), 2, "Calle 1", "efectivo")
	require.NoError(t, err)
	require.Len(t, ids, 1)

	o := store.orders[ids[0]]
	require.NotNil(t, o)
	assert.Equal(t, uint(2), o.UserID)
	assert.Equal(t, uint(1), o.SellerID)
	assert.InDelta(t, 9.99, o.TotalAmount, 0.001)
	assert.Equal(t, models.StatusPending, o.Status)
	require.Len(t, o.Items, 1)
	assert.Equal(t, uint(7), o.Items[0].ProductID)
	assert.True(t, crt.cleared)
}

func TestCheckoutTwoSellersClearsCartAfterBoth(t *testing.T) {
	store := newFakeStore()
	crt := &fakeCart{items: []CheckoutItem{
		{ProductID: 1, SellerID: 1, Quantity: 1, Price: 10},
		{ProductID: 2, SellerID: 2, Quantity: 2, Price: 4},
	}}
	svc := NewService(store, crt)

	ids, err := svc.Checkout(context.Background(), 5, "", "tarjeta")
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.True(t, crt.cleared)

	assert.InDelta(t, 10, store.orders[ids[0]].TotalAmount, 0.001)
	assert.InDelta(t, 8, store.orders[ids[1]].TotalAmount, 0.001)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeCart{})

	_, err := svc.Checkout(context.Background(), 1, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutPartialFailureKeepsCart(t *testing.T) {
	store := newFakeStore()
	store.failSeller = 2
	crt := &fakeCart{items: []CheckoutItem{
		{ProductID: 1, SellerID: 1, Quantity: 1, Price: 10},
		{ProductID: 2, SellerID: 2, Quantity: 1, Price: 4},
	}}
	svc := NewService(store, crt)

	ids, err := svc.Checkout(context.Background(), 5, "", "")
	require.Error(t, err)

	// the first sub-order stays created, the cart is not cleared
	assert.Len(t, ids, 1)
	assert.Len(t, store.orders, 1)
	assert.False(t, crt.cleared)
}

func TestOrderItemsKeepPriceSnapshot(t *testing.T) {
	store := newFakeStore()
	crt := &fakeCart{items: []CheckoutItem{
		{ProductID: 3, SellerID: 1, Quantity: 1, Price: 20},
	}}
	svc := NewService(store, crt)

	ids, err := svc.Checkout(context.Background(), 1, "", "")
	require.NoError(t, err)

	// a later catalog price change must not reach the stored item
	crt.items = []CheckoutItem{{ProductID: 3, SellerID: 1, Quantity: 1, Price: 35}}
	assert.InDelta(t, 20, store.orders[ids[0]].Items[0].Price, 0.001)
}

func TestTransitionLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeCart{})
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.Order{UserID: 1, SellerID: 2, TotalAmount: 5,
		Items: []models.OrderItem{{ProductID: 1, Quantity: 1, Price: 5}}}))
	id := store.nextID

	res, err := svc.Transition(ctx, id, models.StatusProcessing, models.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, res.From)
	assert.False(t, res.PromptReview)

	// re-applying the same transition is rejected the second time
	_, err = svc.Transition(ctx, id, models.StatusProcessing, models.RoleSeller)
	assert.ErrorIs(t, err, ErrUnreachableStatus)

	_, err = svc.Transition(ctx, id, models.StatusShipped, models.RoleSeller)
	require.NoError(t, err)

	res, err = svc.Transition(ctx, id, models.StatusDelivered, models.RoleBuyer)
	require.NoError(t, err)
	assert.True(t, res.PromptReview)

	// delivered is terminal; the order must stay delivered
	_, err = svc.Transition(ctx, id, models.StatusProcessing, models.RoleSeller)
	assert.ErrorIs(t, err, ErrUnreachableStatus)
	st, err := svc.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, st)
}

func TestTransitionReactivate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeCart{})
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.Order{UserID: 1, SellerID: 2, TotalAmount: 5}))
	id := store.nextID

	_, err := svc.Transition(ctx, id, models.StatusCancelled, models.RoleBuyer)
	require.NoError(t, err)

	// buyers cannot reactivate, sellers can
	_, err = svc.Transition(ctx, id, models.StatusPending, models.RoleBuyer)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, err = svc.Transition(ctx, id, models.StatusPending, models.RoleSeller)
	require.NoError(t, err)
	st, _ := svc.Status(ctx, id)
	assert.Equal(t, models.StatusPending, st)
}

func TestTransitionUnknownOrder(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeCart{})

	_, err := svc.Transition(context.Background(), 42, models.StatusProcessing, models.RoleSeller)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTransitionWithoutStatusColumn(t *testing.T) {
	store := newFakeStore()
	store.statusColumn = false
	svc := NewService(store, &fakeCart{})
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.Order{UserID: 1, SellerID: 2, TotalAmount: 5,
		Items: []models.OrderItem{{ProductID: 9, Quantity: 2, Price: 2.5}}}))
	id := store.nextID

	// the write is silently dropped, so the order keeps reading pending
	_, err := svc.Transition(ctx, id, models.StatusProcessing, models.RoleSeller)
	require.NoError(t, err)
	st, err := svc.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, st)

	// listings still default status and keep nested items
	list, err := svc.BuyerOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusPending, list[0].Status)
	require.Len(t, list[0].Items, 1)
	assert.Equal(t, uint(9), list[0].Items[0].ProductID)
}
