package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberease/scheduler/internal/httperr"
	"github.com/barberease/scheduler/internal/httpresp"
	"github.com/barberease/scheduler/internal/middleware"
	"github.com/barberease/scheduler/internal/models"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

type CreateShopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Timezone    string `json:"timezone"`
}

func (h *ShopHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid shop payload.")
		return
	}

	shop := models.Shop{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Timezone:    req.Timezone,
		OwnerID:     ownerID,
		Active:      true,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shop", "Could not create shop.")
		return
	}

	httpresp.Created(c, shop)
}

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.Where("active = true").Order("name ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
		return
	}
	httpresp.List(c, shops)
}

func (h *ShopHandler) GetByID(c *gin.Context) {
	var shop models.Shop
	if err := h.db.First(&shop, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}
	httpresp.OK(c, shop)
}
