package content

import (
	"context"

	"github.com/BruksfildServices01/lawfirm-api/internal/models"
)

type TestimonialRepository interface {
	All(ctx context.Context) ([]models.Testimonial, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []models.Testimonial) error
}

type PracticeAreaRepository interface {
	All(ctx context.Context) ([]models.PracticeArea, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []models.PracticeArea) error
}
