package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:120;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	// One booking per exact date-time; the unique index backs the conflict check.
	ConsultationDate time.Time `gorm:"not null;uniqueIndex" json:"consultation_date"`

	ConsultationType *string `gorm:"size:100" json:"consultation_type"`
	Details          *string `gorm:"type:text" json:"details"`
	Message          *string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
