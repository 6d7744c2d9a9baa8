package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/lawfirm-api/internal/models"
)

type Repository interface {
	// FindByDateRange returns bookings with start <= consultation_date < end.
	FindByDateRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	FindByExactTime(
		ctx context.Context,
		at time.Time,
	) (*models.Booking, error)

	// Insert persists b unless its consultation date is already taken, in
	// which case it returns ErrSlotTaken and writes nothing.
	Insert(
		ctx context.Context,
		b *models.Booking,
	) error

	Count(ctx context.Context) (int64, error)
}

// SlotLocker serializes concurrent create requests for the same timestamp.
// Acquire returns an owner token; Release only frees the lock while that
// token still holds it.
type SlotLocker interface {
	Acquire(ctx context.Context, at time.Time) (token string, ok bool, err error)
	Release(ctx context.Context, at time.Time, token string) error
}
