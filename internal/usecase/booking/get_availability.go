package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	"github.com/BruksfildServices01/lawfirm-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the default slots still free on the given YYYY-MM-DD day.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	if strings.TrimSpace(date) == "" {
		return nil, httperr.ErrBusiness(domain.CodeMissingDate)
	}

	day, err := timezone.ParseDate(date)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDate)
	}

	start, end := timezone.DayBounds(day)

	bookings, err := uc.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	booked := make([]time.Time, 0, len(bookings))
	for _, b := range bookings {
		booked = append(booked, b.ConsultationDate)
	}

	return domain.AvailableSlots(booked), nil
}
