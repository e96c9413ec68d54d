package handlers

import (
	"fmt"
	"net/http"

	"venuely/middleware"
	"venuely/models"
	"venuely/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Venues  []string
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, venues []string, logger *zap.Logger) *BookingHandler {
	if len(venues) == 0 {
		venues = models.DefaultVenues
	}
	return &BookingHandler{Service: svc, Venues: venues, Logger: logger}
}

// bookingRequest is a single reservation in API form, times as "HH:MM".
type bookingRequest struct {
	Venue          string `json:"venue" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Start          string `json:"start" binding:"required"`
	End            string `json:"end" binding:"required"`
	Purpose        string `json:"purpose"`
	PersonInCharge string `json:"personInCharge"`
}

func (r bookingRequest) toIntent() (models.BookingIntent, error) {
	start, err := models.ClockToMinutes(r.Start)
	if err != nil {
		return models.BookingIntent{}, fmt.Errorf("start: %w", err)
	}
	end, err := models.ClockToMinutes(r.End)
	if err != nil {
		return models.BookingIntent{}, fmt.Errorf("end: %w", err)
	}
	return models.BookingIntent{
		Venue:          r.Venue,
		Date:           r.Date,
		Start:          start,
		End:            end,
		Purpose:        r.Purpose,
		PersonInCharge: r.PersonInCharge,
	}, nil
}

// batchBookingRequest books the same venue and time window on several dates.
type batchBookingRequest struct {
	Venue          string   `json:"venue" binding:"required"`
	Dates          []string `json:"dates" binding:"required"`
	Start          string   `json:"start" binding:"required"`
	End            string   `json:"end" binding:"required"`
	Purpose        string   `json:"purpose"`
	PersonInCharge string   `json:"personInCharge"`
}

// One week of dates per submission keeps batches reviewable.
const maxBatchDates = 7

// CheckConflictHandler reports whether a slot collides with existing bookings.
func (h *BookingHandler) CheckConflictHandler(c *gin.Context) {
	var req struct {
		Venue string `json:"venue" binding:"required"`
		Date  string `json:"date" binding:"required"`
		Start string `json:"start" binding:"required"`
		End   string `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	start, err := models.ClockToMinutes(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := models.ClockToMinutes(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.CheckConflict(c.Request.Context(), models.TimeSlot{
		Venue: req.Venue, Date: req.Date, Start: start, End: end,
	})
	if err != nil {
		h.Logger.Error("conflict check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check conflicts"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBookingHandler books a single slot.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	intent, err := req.toIntent()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if intent.PersonInCharge == "" {
		intent.PersonInCharge = c.GetString(middleware.ContextUserNameKey)
	}

	created, err := h.Service.Create(c.Request.Context(), intent, c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created.View())
}

// BatchBookingHandler books the same slot on up to seven dates. Each date
// succeeds or fails on its own; the response carries one outcome per date in
// submission order.
func (h *BookingHandler) BatchBookingHandler(c *gin.Context) {
	var req batchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if len(req.Dates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one date is required"})
		return
	}
	if len(req.Dates) > maxBatchDates {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d dates per submission", maxBatchDates)})
		return
	}
	start, err := models.ClockToMinutes(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := models.ClockToMinutes(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	personInCharge := req.PersonInCharge
	if personInCharge == "" {
		personInCharge = c.GetString(middleware.ContextUserNameKey)
	}
	intents := make([]models.BookingIntent, len(req.Dates))
	for i, date := range req.Dates {
		intents[i] = models.BookingIntent{
			Venue:          req.Venue,
			Date:           date,
			Start:          start,
			End:            end,
			Purpose:        req.Purpose,
			PersonInCharge: personInCharge,
		}
	}

	outcomes, err := h.Service.Submit(c.Request.Context(), intents, c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		h.Logger.Error("batch submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit bookings"})
		return
	}

	// 200 even when some dates fail; the outcomes carry per-date status.
	c.JSON(http.StatusOK, gin.H{"outcomes": outcomes})
}

// ListBookingsHandler returns all bookings, ordered by date then start time.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	views := make([]models.BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = b.View()
	}
	c.JSON(http.StatusOK, views)
}

// GetBookingHandler fetches one booking by ID.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b.View())
}

// UpdateBookingHandler replaces a booking's details.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	intent, err := req.toIntent()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), intent, c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.View())
}

// DeleteBookingHandler cancels a booking.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserIDKey)); err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// ListVenuesHandler returns the bookable venue catalog.
func (h *BookingHandler) ListVenuesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"venues": h.Venues})
}

// respondBookingError maps service error codes to HTTP statuses.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case booking.IsInvalid(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": booking.ErrorMessage(err)})
	case booking.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": booking.ErrorMessage(err)})
	case booking.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": booking.ErrorMessage(err)})
	case booking.IsUnauthorized(err):
		c.JSON(http.StatusForbidden, gin.H{"error": booking.ErrorMessage(err)})
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
