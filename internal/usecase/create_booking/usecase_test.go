package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	fieldRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/field"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *b
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

func (r *fakeBookingRepo) ListByField(_ context.Context, fieldID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.FieldID != fieldID || !b.Date.Equal(date) {
			continue
		}
		if activeOnly && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeFieldRepo struct {
	fields map[int64]*domain.Field
}

func (r *fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	f, ok := r.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return f, nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Name: "John Smith", Email: "john@example.com"}, nil
}

// fakeTxManager сериализует транзакции глобальным мьютексом, как это делает
// serializable isolation для конфликтующих наборов строк
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	mu      sync.Mutex
	created []string
}

func (n *fakeNotifier) BookingCreated(b *domain.Booking, _ *domain.User) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, b.Code)
}

type fixedTime struct{ now time.Time }

func (p fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *fakeBookingRepo, *fakeNotifier) {
	bookingRepo := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	fields := &fakeFieldRepo{fields: map[int64]*domain.Field{
		1: {ID: 1, Name: "Victory Field", PricePerHour: 350000, IsAvailable: true},
		2: {ID: 2, Name: "Sunset Fields", PricePerHour: 400000, IsAvailable: false},
	}}

	uc := NewUseCase(bookingRepo, fields, &fakeUserRepo{}, &fakeTxManager{}, notifier, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	return uc, bookingRepo, notifier
}

func testRequest(start, end string) *Request {
	return &Request{
		UserID:        10,
		FieldID:       1,
		Date:          time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
		PaymentMethod: "cash",
	}
}

func TestExecuteCreatesUnconfirmedBooking(t *testing.T) {
	uc, _, notifier := newTestUseCase()

	resp, err := uc.Execute(context.Background(), testRequest("10:00", "12:00"))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusUnconfirmed), resp.Status)
	assert.Equal(t, int64(700000), resp.TotalPrice, "350000 per hour for two hours")
	assert.NotEmpty(t, resp.Code)
	assert.Equal(t, int64(10), resp.UserID)
	assert.Len(t, notifier.created, 1)
}

func TestExecuteRejectsOverlap(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, testRequest("18:00", "20:00"))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, testRequest("19:00", "21:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecuteAcceptsAdjacentSlot(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, testRequest("18:00", "20:00"))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, testRequest("20:00", "21:00"))
	assert.NoError(t, err, "touching endpoints are not an overlap")
}

func TestExecuteCancellationFreesSlot(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Execute(ctx, testRequest("18:00", "20:00"))
	require.NoError(t, err)

	// Отменяем напрямую в хранилище: создание смотрит только на активные брони
	repo.mu.Lock()
	for _, b := range repo.bookings {
		if b.ID == first.ID {
			b.Status = domain.StatusCancelled
		}
	}
	repo.mu.Unlock()

	_, err = uc.Execute(ctx, testRequest("18:00", "20:00"))
	assert.NoError(t, err)
}

func TestExecuteValidation(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "unknown field", mutate: func(r *Request) { r.FieldID = 99 }, wantErr: ErrFieldNotFound},
		{name: "disabled field", mutate: func(r *Request) { r.FieldID = 2 }, wantErr: ErrFieldUnavailable},
		{name: "past date", mutate: func(r *Request) { r.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidDate},
		{name: "start after end", mutate: func(r *Request) { r.StartTime, r.EndTime = "20:00", "18:00" }, wantErr: ErrInvalidRange},
		{name: "not hour aligned", mutate: func(r *Request) { r.StartTime, r.EndTime = "18:30", "19:30" }, wantErr: ErrInvalidRange},
		{name: "before opening", mutate: func(r *Request) { r.StartTime, r.EndTime = "07:00", "09:00" }, wantErr: ErrInvalidRange},
		{name: "after closing", mutate: func(r *Request) { r.StartTime, r.EndTime = "20:00", "22:00" }, wantErr: ErrInvalidRange},
		{name: "unknown payment method", mutate: func(r *Request) { r.PaymentMethod = "card" }, wantErr: ErrInvalidInput},
		{name: "missing user", mutate: func(r *Request) { r.UserID = 0 }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest("18:00", "20:00")
			tt.mutate(req)

			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecuteConcurrentRace(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = uc.Execute(ctx, testRequest("18:00", "20:00"))
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = uc.Execute(ctx, testRequest("19:00", "21:00"))
	}()
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrSlotConflict)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one request wins the slot")
	assert.Equal(t, 1, conflicts, "the loser gets a conflict, never a silent overwrite")
	assert.Len(t, repo.bookings, 1)
}
