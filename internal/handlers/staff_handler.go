package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberease/scheduler/internal/httperr"
	"github.com/barberease/scheduler/internal/httpresp"
	"github.com/barberease/scheduler/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type CreateStaffRequest struct {
	ShopID         string `json:"shop_id" binding:"required"`
	UserID         string `json:"user_id"`
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid staff payload.")
		return
	}

	staff := models.Staff{
		ShopID:         req.ShopID,
		UserID:         req.UserID,
		Name:           req.Name,
		Specialization: req.Specialization,
		Active:         true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	httpresp.Created(c, staff)
}

func (h *StaffHandler) ListByShop(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.
		Where("shop_id = ? AND active = true", c.Param("id")).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}
	httpresp.List(c, staff)
}
