package models

type PracticeArea struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Icon        *string `gorm:"size:50" json:"icon"`
	Link        string  `gorm:"size:200;not null" json:"link"`
}
