package dto

type BookingRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Date             string  `json:"date"` // YYYY-MM-DD
	Time             string  `json:"time"` // h:mm AM|PM
	ConsultationType *string `json:"consultationType"`
	Details          *string `json:"details"`
	Message          *string `json:"message"`
}

type AvailabilityResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
