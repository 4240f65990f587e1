package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/metrics"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/middleware"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateBookingRequest has no owner field on purpose: the owner is the
// authenticated caller, full stop. A client-supplied user_id in the
// body is silently discarded by binding.
type CreateBookingRequest struct {
	Type string `json:"type" binding:"required,bookingtype"`
	Date string `json:"date" binding:"required,bookingdate"`
}

type BookingDateRequest struct {
	Date string `json:"date" binding:"required,bookingdate"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fieldErrors(err))
		return
	}
	h.create(c, req.Type, req.Date)
}

// CreateForType returns a handler that books with a fixed type; the
// catering and stationery endpoints only accept a date.
func (h *BookingHandler) CreateForType(t models.BookingType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookingDateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, fieldErrors(err))
			return
		}
		h.create(c, string(t), req.Date)
	}
}

func (h *BookingHandler) create(c *gin.Context, bookingType, date string) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		// Authenticate middleware should have rejected already.
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
		return
	}

	booking, err := h.bookings.Create(identity, bookingType, date)
	if err != nil {
		internalError(c)
		return
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.Type)).Inc()

	c.JSON(http.StatusCreated, booking)
}

// ListMine shows the caller's own bookings, newest date first.
func (h *BookingHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
		return
	}

	bookings, err := h.bookings.ListForOwner(identity)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListAll is the manager's view across every owner.
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.bookings.ListAll()
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListByType serves the role-scoped order views (head cook sees
// catering, supervisor sees stationery).
func (h *BookingHandler) ListByType(t models.BookingType) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := h.bookings.ListByType(t)
		if err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}
