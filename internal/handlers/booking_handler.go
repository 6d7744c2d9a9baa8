package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/dto"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	"github.com/BruksfildServices01/lawfirm-api/internal/httpresp"
	"github.com/BruksfildServices01/lawfirm-api/internal/timezone"
	ucBooking "github.com/BruksfildServices01/lawfirm-api/internal/usecase/booking"
)

type BookingHandler struct {
	getAvailability *ucBooking.GetAvailability
	createBooking   *ucBooking.CreateBooking
	logger          logrus.FieldLogger
}

func NewBookingHandler(
	getAvailability *ucBooking.GetAvailability,
	createBooking *ucBooking.CreateBooking,
	logger logrus.FieldLogger,
) *BookingHandler {
	return &BookingHandler{
		getAvailability: getAvailability,
		createBooking:   createBooking,
		logger:          logger,
	}
}

// GET /api/bookings?date=YYYY-MM-DD
func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.Query("date")

	slots, err := h.getAvailability.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.WithField("date", date).Info("Available slots retrieved")
	httpresp.OK(c, dto.AvailabilityResponse{AvailableSlots: slots})
}

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid booking data")
		httperr.BadRequest(c, booking.CodeInvalidBookingData, "Invalid booking data")
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"slot":       b.ConsultationDate.Format(timezone.DateTimeLayout),
	}).Info("Booking created")

	httpresp.Created(c, dto.CreatedResponse{
		Message: "Booking created successfully",
		ID:      b.ID,
	})
}
