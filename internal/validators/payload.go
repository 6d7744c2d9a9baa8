package validators

import (
	"strings"

	"github.com/BruksfildServices01/lawfirm-api/internal/dto"
)

// ValidateBooking requires name, email, phone, date and time and a well-formed
// email. Date and time formats are checked later, when they are parsed.
func ValidateBooking(req dto.BookingRequest) bool {
	return present(req.Name, req.Email, req.Phone, req.Date, req.Time) &&
		ValidateEmail(req.Email)
}

func ValidateContact(req dto.ContactRequest) bool {
	return present(req.Name, req.Email, req.Message) &&
		ValidateEmail(req.Email)
}

func present(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
