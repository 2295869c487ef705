package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/httpresp"
	"github.com/kuaforun/booking-backend/internal/middleware"
	ucBooking "github.com/kuaforun/booking-backend/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	statusUC *ucBooking.ChangeStatus
	listUC   *ucBooking.ListBookings
	getUC    *ucBooking.GetBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	statusUC *ucBooking.ChangeStatus,
	listUC *ucBooking.ListBookings,
	getUC *ucBooking.GetBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		statusUC: statusUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

type CreateBookingRequest struct {
	ShopID     uuid.UUID   `json:"shopId" binding:"required"`
	StaffID    *uuid.UUID  `json:"staffId"`
	Date       string      `json:"date" binding:"required"`
	StartTime  string      `json:"startTime" binding:"required"`
	ServiceIDs []uuid.UUID `json:"serviceIds" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	customerID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_user", "Caller identity could not be resolved.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid booking payload.", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		TenantID:   tenantID,
		ShopID:     req.ShopID,
		StaffID:    req.StaffID,
		CustomerID: customerID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// --------------------------------------------------
// Status
// --------------------------------------------------

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a UUID.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid status payload.", err.Error())
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), tenantID, bookingID, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (h *BookingHandler) List(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	var shopID, staffID *uuid.UUID

	if raw := c.Query("shopId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_shop_id", "shopId must be a UUID.")
			return
		}
		shopID = &id
	}
	if raw := c.Query("staffId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "staffId must be a UUID.")
			return
		}
		staffID = &id
	}

	bookings, err := h.listUC.Execute(
		c.Request.Context(), tenantID, shopID, staffID, c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a UUID.")
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), tenantID, bookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}
