package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	"github.com/BruksfildServices01/lawfirm-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) FindByDateRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("consultation_date >= ? AND consultation_date < ?", start, end).
		Order("consultation_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (r *BookingGormRepository) FindByExactTime(
	ctx context.Context,
	at time.Time,
) (*models.Booking, error) {

	return findByExactTime(r.db.WithContext(ctx), at)
}

// Insert checks for an existing booking and writes the new one inside a single
// transaction. The unique index on consultation_date rejects the loser of a
// concurrent race; that rejection is reported as the same conflict.
func (r *BookingGormRepository) Insert(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findByExactTime(tx, b.ConsultationDate)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrSlotTaken
		}

		return tx.Create(b).Error
	})

	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) || httperr.IsUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *BookingGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func findByExactTime(db *gorm.DB, at time.Time) (*models.Booking, error) {
	var b models.Booking
	err := db.
		Where("consultation_date = ?", at).
		Take(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &b, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
