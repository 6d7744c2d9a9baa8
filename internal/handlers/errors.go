package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/domain/contact"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
)

type errorReply struct {
	status  int
	message string
}

var businessReplies = map[string]errorReply{
	booking.CodeMissingDate:        {http.StatusBadRequest, "Date parameter is required"},
	booking.CodeInvalidDate:        {http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD"},
	booking.CodeInvalidBookingData: {http.StatusBadRequest, "Invalid booking data"},
	booking.CodeInvalidDateOrTime:  {http.StatusBadRequest, "Invalid date or time format"},
	booking.CodeSlotTaken:          {http.StatusConflict, "This time slot is already booked"},
	booking.CodeSlotBusy:           {http.StatusConflict, "This time slot is being booked, please try again"},
	contact.CodeInvalidContactData: {http.StatusBadRequest, "Invalid contact data"},
}

// writeError maps business errors to their status and message. Anything else
// is logged and answered with the generic 500 body.
func writeError(c *gin.Context, logger logrus.FieldLogger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if reply, known := businessReplies[code]; known {
			logger.WithField("code", code).Warn(reply.message)
			httperr.Write(c, reply.status, code, reply.message)
			return
		}
	}

	logger.WithError(err).Error("unexpected error")
	httperr.Internal(c)
}
