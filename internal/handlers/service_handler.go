package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberease/scheduler/internal/httperr"
	"github.com/barberease/scheduler/internal/httpresp"
	"github.com/barberease/scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	ShopID            string  `json:"shop_id" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	DurationMinutes   int     `json:"duration_minutes" binding:"required,gt=0"`
	BufferTimeMinutes int     `json:"buffer_time_minutes" binding:"gte=0"`
	Price             float64 `json:"price" binding:"gte=0"`
	Category          string  `json:"category"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	svc := models.Service{
		ShopID:            req.ShopID,
		Name:              req.Name,
		Description:       req.Description,
		DurationMinutes:   req.DurationMinutes,
		BufferTimeMinutes: req.BufferTimeMinutes,
		Price:             req.Price,
		Category:          req.Category,
		Active:            true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) ListByShop(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("shop_id = ? AND active = true", c.Param("id")).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	httpresp.OK(c, svc)
}
