package dto

import "github.com/BruksfildServices01/lawfirm-api/internal/models"

type TestimonialDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Text  string  `json:"text"`
	Image *string `json:"image"`
}

type PracticeAreaDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
	Link        string  `json:"link"`
}

func NewTestimonialDTO(t models.Testimonial) TestimonialDTO {
	return TestimonialDTO{
		ID:    t.ID,
		Name:  t.Name,
		Role:  t.Role,
		Text:  t.Text,
		Image: t.Image,
	}
}

func NewPracticeAreaDTO(pa models.PracticeArea) PracticeAreaDTO {
	return PracticeAreaDTO{
		ID:          pa.ID,
		Title:       pa.Title,
		Description: pa.Description,
		Icon:        pa.Icon,
		Link:        pa.Link,
	}
}
