package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YahirAlvarez/makeapp/internal/models"
)

// sessionRole returns the logged-in user's role, or "" for anonymous
// callers.
func sessionRole(c *gin.Context) models.Role {
	sess := sessions.Default(c)
	if v, ok := sess.Get("user_type").(string); ok {
		return models.Role(v)
	}
	return ""
}

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
}

func (a *App) register(c *gin.Context) {
	var p registerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	if p.Username == "" || p.Email == "" || p.Password == "" {
		respondError(c, http.StatusBadRequest, "missing required fields")
		return
	}
	if p.UserType == "" {
		p.UserType = string(models.RoleBuyer)
	}
	if p.FullName == "" {
		p.FullName = p.Username
	}

	var cnt int64
	a.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", p.Email, p.Username).
		Count(&cnt)
	if cnt > 0 {
		respondError(c, http.StatusBadRequest, "username or email already registered")
		return
	}

	hash, err := models.HashPassword(p.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	u := models.User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
		UserType:     models.Role(p.UserType),
		FullName:     p.FullName,
	}
	if err := a.DB.Create(&u).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if u.UserType == models.RoleSeller {
		seller := models.Seller{
			UserID:       u.ID,
			BusinessName: fmt.Sprintf("%s's Business", u.FullName),
		}
		if err := a.DB.Create(&seller).Error; err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	sess := sessions.Default(c)
	sess.Set("user_id", u.ID)
	sess.Set("user_type", string(u.UserType))
	_ = sess.Save()

	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "user": u})
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *App) login(c *gin.Context) {
	var p loginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if p.Email == "" || p.Password == "" {
		respondError(c, http.StatusBadRequest, "email and password required")
		return
	}

	var u models.User
	if err := a.DB.Where("email = ?", p.Email).First(&u).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !models.CheckPassword(u.PasswordHash, p.Password) {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	resp := gin.H{"message": "login ok", "user": u}
	if u.UserType == models.RoleSeller {
		seller, err := a.ensureSeller(&u)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		resp["seller"] = seller
	}

	sess := sessions.Default(c)
	sess.Set("user_id", u.ID)
	sess.Set("user_type", string(u.UserType))
	_ = sess.Save()

	c.JSON(http.StatusOK, resp)
}

// ensureSeller loads the storefront profile, creating a default one
// for sellers registered before profiles existed.
func (a *App) ensureSeller(u *models.User) (*models.Seller, error) {
	var s models.Seller
	err := a.DB.Where("user_id = ?", u.ID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.Seller{
			UserID:       u.ID,
			BusinessName: fmt.Sprintf("%s's Business", u.FullName),
		}
		if err := a.DB.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (a *App) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
