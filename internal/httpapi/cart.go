package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/YahirAlvarez/makeapp/internal/cart"
)

type addToCartPayload struct {
	UserID    uint `json:"user_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

func (a *App) addToCart(c *gin.Context) {
	var p addToCartPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if p.UserID == 0 || p.ProductID == 0 {
		respondError(c, http.StatusBadRequest, "missing required fields")
		return
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}

	err := a.Cart.Add(c.Request.Context(), p.UserID, p.ProductID, p.Quantity)
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "product not found")
	case errors.Is(err, cart.ErrOutOfStock):
		respondError(c, http.StatusBadRequest, "product out of stock")
	case err != nil:
		respondError(c, http.StatusInternalServerError, err.Error())
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "product added to cart"})
	}
}

func (a *App) getCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	rows, err := a.Cart.Items(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []cart.Row{}
	}
	c.JSON(http.StatusOK, gin.H{"cart": rows})
}

func (a *App) removeFromCart(c *gin.Context) {
	userID, err1 := strconv.ParseUint(c.Param("user_id"), 10, 32)
	productID, err2 := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err1 != nil || err2 != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.Cart.Remove(c.Request.Context(), uint(userID), uint(productID)); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product removed from cart"})
}

func (a *App) clearCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := a.Cart.Clear(c.Request.Context(), uint(id)); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "cart cleared"})
}
