package models

import "time"

type Testimonial struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Role  string  `gorm:"size:100;not null" json:"role"`
	Text  string  `gorm:"type:text;not null" json:"text"`
	Image *string `gorm:"size:200" json:"image"`

	CreatedAt time.Time `json:"created_at"`
}
