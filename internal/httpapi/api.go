// Package httpapi exposes the JSON HTTP API of the marketplace.
package httpapi

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YahirAlvarez/makeapp/internal/cart"
	"github.com/YahirAlvarez/makeapp/internal/orders"
)

// App bundles the dependencies of the API handlers.
type App struct {
	DB     *gorm.DB
	Cart   *cart.Store
	Orders *orders.Service
}

func NewApp(db *gorm.DB, cartStore *cart.Store, svc *orders.Service) *App {
	return &App{DB: db, Cart: cartStore, Orders: svc}
}

// Register mounts every route under /api.
func (a *App) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("", a.index)

	api.POST("/register", a.register)
	api.POST("/login", a.login)
	api.GET("/logout", a.logout)

	api.GET("/products", a.listProducts)
	api.GET("/products/seller/:seller_id", a.listSellerProducts)
	api.POST("/products", a.createProduct)
	api.PUT("/products/:id", a.updateProduct)
	api.DELETE("/products/:id", a.deleteProduct)

	api.POST("/cart/add", a.addToCart)
	api.GET("/cart/:user_id", a.getCart)
	api.DELETE("/cart/clear/:user_id", a.clearCart)
	api.DELETE("/cart/:user_id/:product_id", a.removeFromCart)

	api.GET("/sellers/:user_id", a.getSeller)
	api.POST("/sellers", a.createSeller)
	api.PUT("/sellers/:user_id", a.updateSeller)

	api.POST("/orders", a.createOrder)
	api.POST("/checkout", a.checkout)
	api.GET("/orders/user/:user_id", a.userOrders)
	api.GET("/orders/seller/:seller_id", a.sellerOrders)
	api.GET("/orders/:id/actions", a.orderActions)
	api.PUT("/orders/:id", a.updateOrder)
}

func (a *App) index(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "MakeApp API",
		"endpoints": gin.H{
			"auth":     []string{"POST /api/register", "POST /api/login"},
			"products": []string{"GET /api/products", "GET /api/products/seller/:sellerId", "POST /api/products", "PUT /api/products/:id", "DELETE /api/products/:id"},
			"cart":     []string{"POST /api/cart/add", "GET /api/cart/:userId", "DELETE /api/cart/:userId/:productId", "DELETE /api/cart/clear/:userId"},
			"orders":   []string{"POST /api/orders", "POST /api/checkout", "GET /api/orders/user/:userId", "GET /api/orders/seller/:sellerId", "PUT /api/orders/:id"},
			"sellers":  []string{"GET /api/sellers/:userId", "POST /api/sellers", "PUT /api/sellers/:userId"},
		},
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
