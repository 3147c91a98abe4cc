package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/YahirAlvarez/makeapp/internal/models"
)

func (a *App) listProducts(c *gin.Context) {
	var items []models.Product
	if err := a.DB.Order("id desc").Find(&items).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := a.attachSellerNames(items); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

func (a *App) listSellerProducts(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("seller_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid seller id")
		return
	}
	var items []models.Product
	if err := a.DB.Where("seller_id = ?", uint(id)).Order("id desc").Find(&items).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

// attachSellerNames fills the joined display fields for catalog
// listings.
func (a *App) attachSellerNames(items []models.Product) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.SellerID)
	}

	type sellerRow struct {
		UserID       uint
		BusinessName string
	}
	var sellerRows []sellerRow
	if err := a.DB.Model(&models.Seller{}).Select("user_id, business_name").
		Where("user_id IN ?", ids).Scan(&sellerRows).Error; err != nil {
		return err
	}
	business := map[uint]string{}
	for _, r := range sellerRows {
		business[r.UserID] = r.BusinessName
	}

	type userRow struct {
		ID       uint
		FullName string
	}
	var userRows []userRow
	if err := a.DB.Model(&models.User{}).Select("id, full_name").
		Where("id IN ?", ids).Scan(&userRows).Error; err != nil {
		return err
	}
	names := map[uint]string{}
	for _, r := range userRows {
		names[r.ID] = r.FullName
	}

	for i := range items {
		items[i].BusinessName = business[items[i].SellerID]
		items[i].SellerName = names[items[i].SellerID]
	}
	return nil
}

type productPayload struct {
	SellerID      uint    `json:"seller_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Images        string  `json:"images"`
}

func (a *App) createProduct(c *gin.Context) {
	var p productPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if p.SellerID == 0 || p.Name == "" || p.Price == 0 {
		respondError(c, http.StatusBadRequest, "missing required fields")
		return
	}
	if p.StockQuantity < 0 {
		p.StockQuantity = 0
	}

	item := models.Product{
		SellerID:      p.SellerID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Brand:         p.Brand,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Images:        p.Images,
	}
	if err := a.DB.Create(&item).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "product created", "productId": item.ID})
}

// productColumns lists the columns a partial update may touch.
var productColumns = map[string]bool{
	"name":           true,
	"description":    true,
	"category":       true,
	"brand":          true,
	"price":          true,
	"stock_quantity": true,
	"images":         true,
}

func (a *App) updateProduct(c *gin.Context) {
	id := c.Param("id")
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	updates := map[string]any{}
	for k, v := range body {
		if productColumns[k] {
			updates[k] = v
		}
	}
	if qty, ok := updates["stock_quantity"].(float64); ok && qty < 0 {
		updates["stock_quantity"] = 0
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := a.DB.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product updated"})
}

func (a *App) deleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := a.DB.Where("id = ?", id).Delete(&models.Product{}).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product deleted"})
}
