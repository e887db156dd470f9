package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/httperr"
	"github.com/barberease/scheduler/internal/httpresp"
	"github.com/barberease/scheduler/internal/middleware"
	ucBooking "github.com/barberease/scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.Create
	cancelUC       *ucBooking.Cancel
	updateStatusUC *ucBooking.UpdateStatus
	listByStaffUC  *ucBooking.ListByStaff
	listByShopUC   *ucBooking.ListByShop
	listByUserUC   *ucBooking.ListByUser
	availabilityUC *ucBooking.GetAvailability
	bookings       domain.BookingStore
	loc            *time.Location
}

func NewBookingHandler(
	createUC *ucBooking.Create,
	cancelUC *ucBooking.Cancel,
	updateStatusUC *ucBooking.UpdateStatus,
	listByStaffUC *ucBooking.ListByStaff,
	listByShopUC *ucBooking.ListByShop,
	listByUserUC *ucBooking.ListByUser,
	availabilityUC *ucBooking.GetAvailability,
	bookings domain.BookingStore,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		updateStatusUC: updateStatusUC,
		listByStaffUC:  listByStaffUC,
		listByShopUC:   listByShopUC,
		listByUserUC:   listByUserUC,
		availabilityUC: availabilityUC,
		bookings:       bookings,
		loc:            loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ShopID        string    `json:"shop_id" binding:"required"`
	StaffID       string    `json:"staff_id" binding:"required"`
	ServiceID     string    `json:"service_id" binding:"required"`
	AppointmentAt time.Time `json:"appointment_at" binding:"required"`
	Notes         string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateInput{
		ShopID:        req.ShopID,
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		AppointmentAt: req.AppointmentAt,
		Notes:         req.Notes,
	}, customerID)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) GetByID(c *gin.Context) {
	b, err := h.bookings.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	out, err := h.listByUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BookingHandler) ListByStaff(c *gin.Context) {
	from, err := parseBound(c.Query("from"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "Invalid from bound.")
		return
	}
	to, err := parseBound(c.Query("to"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "Invalid to bound.")
		return
	}

	out, err := h.listByStaffUC.Execute(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BookingHandler) ListByShop(c *gin.Context) {
	from, err := parseBound(c.Query("from"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "Invalid from bound.")
		return
	}
	to, err := parseBound(c.Query("to"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "Invalid to bound.")
		return
	}

	out, err := h.listByShopUC.Execute(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	staffID := c.Query("staff_id")
	serviceID := c.Query("service_id")
	if staffID == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_parameters", "staff_id and service_id are required.")
		return
	}

	date, err := parseDate(c.Query("date"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date, expected YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		ShopID:    c.Query("shop_id"),
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid cancellation payload.")
			return
		}
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	b, err := h.updateStatusUC.Execute(c.Request.Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	httpresp.OK(c, b)
}
