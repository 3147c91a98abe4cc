package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YahirAlvarez/makeapp/internal/models"
)

func (a *App) getSeller(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	var s models.Seller
	if err := a.DB.Where("user_id = ?", uint(id)).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "seller not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seller": s})
}

type sellerPayload struct {
	UserID              uint   `json:"user_id"`
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	StoreAddress        string `json:"store_address"`
	PaymentMethods      string `json:"payment_methods"`
}

func (a *App) createSeller(c *gin.Context) {
	var p sellerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if p.UserID == 0 || p.BusinessName == "" {
		respondError(c, http.StatusBadRequest, "missing required fields")
		return
	}

	var cnt int64
	a.DB.Model(&models.Seller{}).Where("user_id = ?", p.UserID).Count(&cnt)
	if cnt > 0 {
		respondError(c, http.StatusBadRequest, "seller profile already exists")
		return
	}

	s := models.Seller{
		UserID:              p.UserID,
		BusinessName:        p.BusinessName,
		BusinessDescription: p.BusinessDescription,
		StoreAddress:        p.StoreAddress,
		PaymentMethods:      p.PaymentMethods,
	}
	if err := a.DB.Create(&s).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "seller profile created", "seller": s})
}

func (a *App) updateSeller(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	var p sellerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	res := a.DB.Model(&models.Seller{}).Where("user_id = ?", uint(id)).Updates(map[string]any{
		"business_name":        p.BusinessName,
		"business_description": p.BusinessDescription,
		"store_address":        p.StoreAddress,
		"payment_methods":      p.PaymentMethods,
	})
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "seller not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "seller updated"})
}
