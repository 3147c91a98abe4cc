package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/YahirAlvarez/makeapp/internal/cart"
	"github.com/YahirAlvarez/makeapp/internal/config"
	mydb "github.com/YahirAlvarez/makeapp/internal/db"
	"github.com/YahirAlvarez/makeapp/internal/httpapi"
	"github.com/YahirAlvarez/makeapp/internal/models"
	"github.com/YahirAlvarez/makeapp/internal/orders"
)

func main() {
	cfg := config.Load()

	db := mydb.MustOpen(cfg.DSN)
	// AUTO_MIGRATE=0 skips migration for legacy databases; the order
	// store then falls back to its schema-tolerant paths.
	if os.Getenv("AUTO_MIGRATE") != "0" {
		if err := db.AutoMigrate(
			&models.User{}, &models.Seller{}, &models.Product{},
			&models.CartItem{}, &models.Order{}, &models.OrderItem{},
		); err != nil {
			log.Fatal(err)
		}
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	cartStore := cart.NewStore(db)
	orderStore := orders.NewGormStore(db)
	svc := orders.NewService(orderStore, cartStore)

	r := gin.New()
	r.Use(httpapi.RequestID(), httpapi.RequestLogger(), gin.Recovery())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("mp_session", store))

	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	httpapi.NewApp(db, cartStore, svc).Register(r)

	log.Println("Server listening on " + cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
