package orders

import "github.com/YahirAlvarez/makeapp/internal/models"

// CheckoutItem is one cart line at checkout time: the product, the
// seller who owns it and the unit price as loaded with the cart.
type CheckoutItem struct {
	ProductID uint
	SellerID  uint
	Quantity  int
	Price     float64
}

// Draft is an order creation request for a single seller.
type Draft struct {
	SellerID uint
	Total    float64
	Items    []models.OrderItem
}

// SplitBySeller partitions cart items into one draft per distinct
// seller, in order of each seller's first appearance. Items without a
// resolvable seller are dropped. Every item price is copied into the
// draft so the order keeps a snapshot independent of later product
// edits.
func SplitBySeller(items []CheckoutItem) []Draft {
	var drafts []Draft
	index := map[uint]int{}

	for _, it := range items {
		if it.SellerID == 0 {
			continue
		}
		i, ok := index[it.SellerID]
		if !ok {
			i = len(drafts)
			index[it.SellerID] = i
			drafts = append(drafts, Draft{SellerID: it.SellerID})
		}
		drafts[i].Items = append(drafts[i].Items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
		drafts[i].Total += it.Price * float64(it.Quantity)
	}
	return drafts
}
