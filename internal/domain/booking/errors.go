package booking

import "github.com/BruksfildServices01/lawfirm-api/internal/httperr"

const (
	CodeMissingDate        = "missing_date"
	CodeInvalidDate        = "invalid_date"
	CodeInvalidBookingData = "invalid_booking_data"
	CodeInvalidDateOrTime  = "invalid_date_or_time"
	CodeSlotTaken          = "slot_taken"
	CodeSlotBusy           = "slot_busy"
)

var (
	ErrSlotTaken = httperr.ErrBusiness(CodeSlotTaken)

	// ErrSlotBusy means another request is booking the same free slot right
	// now. The caller may retry.
	ErrSlotBusy = httperr.ErrBusiness(CodeSlotBusy)
)
