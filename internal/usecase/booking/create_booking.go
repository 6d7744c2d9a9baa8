package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/dto"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	"github.com/BruksfildServices01/lawfirm-api/internal/models"
	"github.com/BruksfildServices01/lawfirm-api/internal/notify"
	"github.com/BruksfildServices01/lawfirm-api/internal/timezone"
	"github.com/BruksfildServices01/lawfirm-api/internal/validators"
)

// Notifier accepts notifications for delivery after the request completes.
type Notifier interface {
	Dispatch(n notify.Notification)
}

type CreateBooking struct {
	repo     domain.Repository
	locker   domain.SlotLocker
	notifier Notifier
	logger   logrus.FieldLogger
}

func NewCreateBooking(
	repo domain.Repository,
	locker domain.SlotLocker,
	notifier Notifier,
	logger logrus.FieldLogger,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		locker:   locker,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in dto.BookingRequest,
) (*models.Booking, error) {

	if !validators.ValidateBooking(in) {
		return nil, httperr.ErrBusiness(domain.CodeInvalidBookingData)
	}

	at, err := timezone.ParseDateTime(strings.TrimSpace(in.Date), strings.TrimSpace(in.Time))
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}

	token, acquired, err := uc.locker.Acquire(ctx, at)
	switch {
	case err != nil:
		// the unique index still rejects duplicates without the lock
		uc.logger.WithError(err).Warn("slot lock unavailable")
	case !acquired:
		return nil, uc.lockedSlotError(ctx, at)
	default:
		defer func() {
			if err := uc.locker.Release(context.WithoutCancel(ctx), at, token); err != nil {
				uc.logger.WithError(err).Warn("failed to release slot lock")
			}
		}()
	}

	b := &models.Booking{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		ConsultationDate: at,
		ConsultationType: in.ConsultationType,
		Details:          in.Details,
		Message:          in.Message,
	}

	if err := uc.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	// the booking is committed; a failed count only degrades the subject
	count, err := uc.repo.Count(ctx)
	if err != nil {
		uc.logger.WithError(err).WithField("booking_id", b.ID).Warn("failed to count bookings")
		count = 0
	}

	uc.notifier.Dispatch(bookingNotification(in, b, count))

	return b, nil
}

// lockedSlotError reports a slot another request is holding. A stored
// booking means the slot is taken; otherwise the holder has not committed
// yet and the caller may retry.
func (uc *CreateBooking) lockedSlotError(ctx context.Context, at time.Time) error {
	existing, err := uc.repo.FindByExactTime(ctx, at)
	if err != nil {
		return fmt.Errorf("failed to check slot: %w", err)
	}
	if existing != nil {
		return domain.ErrSlotTaken
	}
	return domain.ErrSlotBusy
}

type bookingCreatedEvent struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	ConsultationDate time.Time `json:"consultationDate"`
	ConsultationType *string   `json:"consultationType,omitempty"`
	Details          *string   `json:"details,omitempty"`
	Message          *string   `json:"message,omitempty"`
}

func bookingNotification(in dto.BookingRequest, b *models.Booking, count int64) notify.Notification {
	body := "New Booking Received!\n\n" +
		"Name: " + in.Name + "\n" +
		"Email: " + in.Email + "\n" +
		"Phone: " + in.Phone + "\n" +
		"Date: " + in.Date + "\n" +
		"Time: " + in.Time + "\n" +
		"Consultation Type: " + orNA(in.ConsultationType) + "\n" +
		"Details: " + orNA(in.Details) + "\n" +
		"Message: " + orNA(in.Message)

	subject := "New Booking Received"
	if count > 0 {
		subject = fmt.Sprintf("New Booking Received (Booking #%d)", count)
	}

	return notify.Notification{
		Kind:    notify.KindBookingCreated,
		Subject: subject,
		Body:    body,
		Key:     strconv.FormatUint(uint64(b.ID), 10),
		Payload: bookingCreatedEvent{
			ID:               b.ID,
			Name:             b.Name,
			Email:            b.Email,
			Phone:            b.Phone,
			ConsultationDate: b.ConsultationDate,
			ConsultationType: b.ConsultationType,
			Details:          b.Details,
			Message:          b.Message,
		},
	}
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}
