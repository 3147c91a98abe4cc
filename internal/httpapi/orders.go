package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/YahirAlvarez/makeapp/internal/models"
	"github.com/YahirAlvarez/makeapp/internal/orders"
)

type orderItemPayload struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type createOrderPayload struct {
	UserID          uint               `json:"user_id"`
	SellerID        uint               `json:"seller_id"`
	TotalAmount     float64            `json:"total_amount"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	Status          string             `json:"status"`
	Items           []orderItemPayload `json:"items"`
}

// createOrder stores a single-seller order exactly as posted. Legacy
// clients split the cart themselves and call this once per seller;
// new clients should use POST /api/checkout instead.
func (a *App) createOrder(c *gin.Context) {
	var p createOrderPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if p.UserID == 0 || p.SellerID == 0 || p.TotalAmount == 0 || len(p.Items) == 0 {
		respondError(c, http.StatusBadRequest, "missing required fields")
		return
	}

	status := models.StatusPending
	if p.Status != "" {
		st, err := orders.ParseStatus(p.Status)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		status = st
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = "efectivo"
	}

	o := models.Order{
		UserID:          p.UserID,
		SellerID:        p.SellerID,
		TotalAmount:     p.TotalAmount,
		ShippingAddress: p.ShippingAddress,
		PaymentMethod:   p.PaymentMethod,
		Status:          status,
	}
	for _, it := range p.Items {
		o.Items = append(o.Items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	if err := a.Orders.Create(c.Request.Context(), &o); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orderId": o.ID})
}

type checkoutPayload struct {
	UserID          uint   `json:"user_id"`
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}

// checkout converts the buyer's server-side cart into one pending
// order per seller and clears the cart once all of them are stored.
func (a *App) checkout(c *gin.Context) {
	var p checkoutPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if p.UserID == 0 {
		respondError(c, http.StatusBadRequest, "missing required fields")
		return
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = "efectivo"
	}

	ids, err := a.Orders.Checkout(c.Request.Context(), p.UserID, p.ShippingAddress, p.PaymentMethod)
	if err != nil {
		if errors.Is(err, orders.ErrEmptyCart) {
			respondError(c, http.StatusBadRequest, "cart is empty")
			return
		}
		// Partial creation is possible; report what exists.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "orderIds": ids})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orderIds": ids})
}

func (a *App) userOrders(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	list, err := a.Orders.BuyerOrders(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

func (a *App) sellerOrders(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("seller_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid seller id")
		return
	}
	list, err := a.Orders.SellerOrders(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

type updateOrderPayload struct {
	Status string `json:"status"`
	Role   string `json:"role"`
}

// updateOrder applies a status transition. The actor role comes from
// the request body, falling back to the logged-in session; with
// neither present the transition is checked for reachability only.
func (a *App) updateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	var p updateOrderPayload
	if err := c.ShouldBindJSON(&p); err != nil || p.Status == "" {
		respondError(c, http.StatusBadRequest, "status required")
		return
	}
	target, err := orders.ParseStatus(p.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	role := models.Role(p.Role)
	if role == "" {
		role = sessionRole(c)
	}

	res, err := a.Orders.Transition(c.Request.Context(), uint(id), target, role)
	switch {
	case err == nil:
	case errors.Is(err, orders.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, "order not found")
		return
	case errors.Is(err, orders.ErrUnreachableStatus), errors.Is(err, orders.ErrRoleNotAllowed):
		respondError(c, http.StatusConflict, err.Error())
		return
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := gin.H{"success": true}
	if res.PromptReview {
		resp["prompt_review"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// orderActions tells a dashboard which transitions it may offer for
// an order, given the viewer's role.
func (a *App) orderActions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	role := models.Role(c.Query("role"))
	if role == "" {
		role = sessionRole(c)
	}

	current, err := a.Orders.Status(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	targets := orders.AllowedTargets(current, role)
	if targets == nil {
		targets = []models.OrderStatus{}
	}
	c.JSON(http.StatusOK, gin.H{"status": current, "actions": targets})
}
