package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/dto"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	"github.com/BruksfildServices01/lawfirm-api/internal/logging"
	"github.com/BruksfildServices01/lawfirm-api/internal/models"
	"github.com/BruksfildServices01/lawfirm-api/internal/notify"
)

func validRequest() dto.BookingRequest {
	return dto.BookingRequest{
		Name:  gofakeit.Name(),
		Email: "client@example.com",
		Phone: gofakeit.Phone(),
		Date:  "2024-05-01",
		Time:  "2:00 PM",
	}
}

var (
	slotAt   = time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)
	sameSlot = mock.MatchedBy(func(t time.Time) bool { return t.Equal(slotAt) })
)

func newCreateBooking(repo *MockBookingRepository, locker *MockSlotLocker, n *recordingNotifier) *CreateBooking {
	return NewCreateBooking(repo, locker, n, logging.Discard())
}

func TestCreateBooking_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	locker := &MockSlotLocker{}
	notifier := &recordingNotifier{}

	locker.On("Acquire", mock.Anything, sameSlot).Return("owner-1", true, nil)
	locker.On("Release", mock.Anything, sameSlot, "owner-1").Return(nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.ConsultationDate.Equal(slotAt)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Booking).ID = 7
	}).Return(nil)
	repo.On("Count", mock.Anything).Return(int64(3), nil)

	in := validRequest()
	kind := "Family Law"
	in.ConsultationType = &kind

	b, err := newCreateBooking(repo, locker, notifier).Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, uint(7), b.ID)
	assert.Equal(t, in.Name, b.Name)

	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.KindBookingCreated, sent[0].Kind)
	assert.Equal(t, "New Booking Received (Booking #3)", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "Name: "+in.Name+"\n")
	assert.Contains(t, sent[0].Body, "Time: 2:00 PM\n")
	assert.Contains(t, sent[0].Body, "Consultation Type: Family Law\n")
	assert.Contains(t, sent[0].Body, "Details: N/A\n")
	assert.True(t, strings.HasSuffix(sent[0].Body, "\nMessage: N/A"))
	assert.Equal(t, "7", sent[0].Key)

	repo.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestCreateBooking_InvalidData(t *testing.T) {
	cases := map[string]func(*dto.BookingRequest){
		"bad email":    func(r *dto.BookingRequest) { r.Email = "not-an-email" },
		"missing name": func(r *dto.BookingRequest) { r.Name = "" },
		"blank phone":  func(r *dto.BookingRequest) { r.Phone = "   " },
		"missing date": func(r *dto.BookingRequest) { r.Date = "" },
		"missing time": func(r *dto.BookingRequest) { r.Time = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &MockBookingRepository{}
			locker := &MockSlotLocker{}
			notifier := &recordingNotifier{}

			in := validRequest()
			mutate(&in)

			_, err := newCreateBooking(repo, locker, notifier).Execute(context.Background(), in)

			assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidBookingData))
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			assert.Empty(t, notifier.all())
		})
	}
}

func TestCreateBooking_InvalidDateOrTime(t *testing.T) {
	for _, clock := range []string{"14:00", "25:00 PM", "2 PM"} {
		repo := &MockBookingRepository{}
		locker := &MockSlotLocker{}

		in := validRequest()
		in.Time = clock

		_, err := newCreateBooking(repo, locker, &recordingNotifier{}).Execute(context.Background(), in)

		assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidDateOrTime), clock)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	}
}

func TestCreateBooking_SlotTakenInRepository(t *testing.T) {
	repo := &MockBookingRepository{}
	locker := &MockSlotLocker{}
	notifier := &recordingNotifier{}

	locker.On("Acquire", mock.Anything, sameSlot).Return("owner-1", true, nil)
	locker.On("Release", mock.Anything, sameSlot, "owner-1").Return(nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := newCreateBooking(repo, locker, notifier).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	repo.AssertNotCalled(t, "Count", mock.Anything)
	assert.Empty(t, notifier.all())
	locker.AssertExpectations(t)
}

func TestCreateBooking_SlotLockedAndAlreadyStored(t *testing.T) {
	repo := &MockBookingRepository{}
	locker := &MockSlotLocker{}

	locker.On("Acquire", mock.Anything, sameSlot).Return("", false, nil)
	repo.On("FindByExactTime", mock.Anything, sameSlot).
		Return(&models.Booking{ID: 1, ConsultationDate: slotAt}, nil)

	_, err := newCreateBooking(repo, locker, &recordingNotifier{}).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	locker.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_SlotLockedButStillFree(t *testing.T) {
	repo := &MockBookingRepository{}
	locker := &MockSlotLocker{}

	locker.On("Acquire", mock.Anything, sameSlot).Return("", false, nil)
	repo.On("FindByExactTime", mock.Anything, sameSlot).Return(nil, nil)

	_, err := newCreateBooking(repo, locker, &recordingNotifier{}).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrSlotBusy)
	assert.False(t, httperr.IsBusiness(err, domain.CodeSlotTaken))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateBooking_CountFailureStillReturnsBooking(t *testing.T) {
	repo := &MockBookingRepository{}
	locker := &MockSlotLocker{}
	notifier := &recordingNotifier{}

	locker.On("Acquire", mock.Anything, sameSlot).Return("owner-1", true, nil)
	locker.On("Release", mock.Anything, sameSlot, "owner-1").Return(nil)
	repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Booking).ID = 12
	}).Return(nil)
	repo.On("Count", mock.Anything).Return(int64(0), errors.New("db hiccup"))

	b, err := newCreateBooking(repo, locker, notifier).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, uint(12), b.ID)

	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "New Booking Received", sent[0].Subject)
	assert.Equal(t, "12", sent[0].Key)
}

func TestCreateBooking_AcceptsAnyCaseMeridiem(t *testing.T) {
	for _, clock := range []string{"2:00 pm", "2:00 Pm", "02:00 pM"} {
		repo := &MockBookingRepository{}
		locker := &MockSlotLocker{}

		locker.On("Acquire", mock.Anything, sameSlot).Return("owner-1", true, nil)
		locker.On("Release", mock.Anything, sameSlot, "owner-1").Return(nil)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
			return b.ConsultationDate.Equal(slotAt)
		})).Return(nil)
		repo.On("Count", mock.Anything).Return(int64(1), nil)

		in := validRequest()
		in.Time = clock

		_, err := newCreateBooking(repo, locker, &recordingNotifier{}).Execute(context.Background(), in)

		require.NoError(t, err, clock)
		repo.AssertExpectations(t)
	}
}

func TestCreateBooking_LockErrorFallsBackToDatabase(t *testing.T) {
	repo := &MockBookingRepository{}
	locker := &MockSlotLocker{}
	notifier := &recordingNotifier{}

	locker.On("Acquire", mock.Anything, sameSlot).Return("", false, errors.New("redis down"))
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	repo.On("Count", mock.Anything).Return(int64(1), nil)

	_, err := newCreateBooking(repo, locker, notifier).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, notifier.all(), 1)
	locker.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}
