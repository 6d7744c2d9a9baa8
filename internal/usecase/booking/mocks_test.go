package booking

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/lawfirm-api/internal/models"
	"github.com/BruksfildServices01/lawfirm-api/internal/notify"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByExactTime(ctx context.Context, at time.Time) (*models.Booking, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Insert(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSlotLocker struct {
	mock.Mock
}

func (m *MockSlotLocker) Acquire(ctx context.Context, at time.Time) (string, bool, error) {
	args := m.Called(ctx, at)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSlotLocker) Release(ctx context.Context, at time.Time, token string) error {
	args := m.Called(ctx, at, token)
	return args.Error(0)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (r *recordingNotifier) Dispatch(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) all() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.sent...)
}
