package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/lawfirm-api/internal/domain/content"
	"github.com/BruksfildServices01/lawfirm-api/internal/models"
)

// --------------------------------------------------
// Testimonials
// --------------------------------------------------

type TestimonialGormRepository struct {
	db *gorm.DB
}

func NewTestimonialGormRepository(db *gorm.DB) *TestimonialGormRepository {
	return &TestimonialGormRepository{db: db}
}

func (r *TestimonialGormRepository) All(ctx context.Context) ([]models.Testimonial, error) {
	var items []models.Testimonial
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return items, nil
}

func (r *TestimonialGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Testimonial{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count testimonials: %w", err)
	}
	return count, nil
}

func (r *TestimonialGormRepository) InsertMany(ctx context.Context, items []models.Testimonial) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("failed to insert testimonials: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Practice areas
// --------------------------------------------------

type PracticeAreaGormRepository struct {
	db *gorm.DB
}

func NewPracticeAreaGormRepository(db *gorm.DB) *PracticeAreaGormRepository {
	return &PracticeAreaGormRepository{db: db}
}

func (r *PracticeAreaGormRepository) All(ctx context.Context) ([]models.PracticeArea, error) {
	var items []models.PracticeArea
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list practice areas: %w", err)
	}
	return items, nil
}

func (r *PracticeAreaGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PracticeArea{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count practice areas: %w", err)
	}
	return count, nil
}

func (r *PracticeAreaGormRepository) InsertMany(ctx context.Context, items []models.PracticeArea) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("failed to insert practice areas: %w", err)
	}
	return nil
}

var (
	_ content.TestimonialRepository  = (*TestimonialGormRepository)(nil)
	_ content.PracticeAreaRepository = (*PracticeAreaGormRepository)(nil)
)
