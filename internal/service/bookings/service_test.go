package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	bookingRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/booking"
	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings/models"
	"github.com/fieldbook/FieldBooking-Service/pkg/ptr"
)

type fakeBookingRepo struct {
	byID map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListByUser(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByField(_ context.Context, fieldID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
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

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if filter.FieldID != nil && b.FieldID != *filter.FieldID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Name: "Jane Doe", Email: "jane@example.com"}, nil
}

type fakeNotifier struct {
	statusChanged int
}

func (n *fakeNotifier) BookingStatusChanged(*domain.Booking, *domain.User) {
	n.statusChanged++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	owner = models.Actor{UserID: 10}
	other = models.Actor{UserID: 20}
	admin = models.Actor{UserID: 1, IsAdmin: true}
)

func newTestService(statuses ...domain.BookingStatus) (*Service, *fakeBookingRepo, *fakeNotifier) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
	for i, status := range statuses {
		id := int64(i + 1)
		repo.byID[id] = &domain.Booking{
			ID:      id,
			UserID:  owner.UserID,
			FieldID: 1,
			Date:    time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			Status:  status,
		}
	}
	notifier := &fakeNotifier{}
	return NewService(repo, fakeUserRepo{}, notifier, nopLogger{}), repo, notifier
}

func TestGetByIDAccess(t *testing.T) {
	svc, _, _ := newTestService(domain.StatusConfirmed)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 1, owner)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 1, admin)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 1, other)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, 99, owner)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "unconfirmed to confirmed", from: domain.StatusUnconfirmed, to: "confirmed"},
		{name: "unconfirmed to cancelled", from: domain.StatusUnconfirmed, to: "cancelled"},
		{name: "confirmed to cancelled", from: domain.StatusConfirmed, to: "cancelled"},
		{name: "cancelled is terminal", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "cancelled cannot become unconfirmed", from: domain.StatusCancelled, to: "unconfirmed", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusUnconfirmed, to: "pending", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, notifier := newTestService(tt.from)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to}, admin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.byID[1].Status, "status must stay unchanged")
				assert.Zero(t, notifier.statusChanged)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, 1, notifier.statusChanged)
		})
	}
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(domain.StatusUnconfirmed)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"}, owner)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels own booking", func(t *testing.T) {
		svc, repo, _ := newTestService(domain.StatusConfirmed)

		resp, err := svc.Cancel(context.Background(), 1, owner)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, domain.StatusCancelled, repo.byID[1].Status)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusConfirmed)

		_, err := svc.Cancel(context.Background(), 1, other)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusCancelled)

		_, err := svc.Cancel(context.Background(), 1, owner)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestDelete(t *testing.T) {
	t.Run("admin hard delete", func(t *testing.T) {
		svc, repo, _ := newTestService(domain.StatusCancelled)

		require.NoError(t, svc.Delete(context.Background(), 1, admin))
		assert.Empty(t, repo.byID)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusCancelled)

		err := svc.Delete(context.Background(), 1, owner)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestListByUserAccess(t *testing.T) {
	svc, _, _ := newTestService(domain.StatusConfirmed, domain.StatusUnconfirmed)
	ctx := context.Background()

	resp, err := svc.ListByUser(ctx, &models.ListUserBookingsRequest{UserID: owner.UserID}, owner)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	_, err = svc.ListByUser(ctx, &models.ListUserBookingsRequest{UserID: owner.UserID}, other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListByUserStatusFilter(t *testing.T) {
	svc, _, _ := newTestService(domain.StatusConfirmed, domain.StatusUnconfirmed)

	resp, err := svc.ListByUser(context.Background(), &models.ListUserBookingsRequest{
		UserID: owner.UserID,
		Status: ptr.Ptr("confirmed"),
	}, owner)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
}

func TestListAllFilters(t *testing.T) {
	svc, _, _ := newTestService(domain.StatusConfirmed, domain.StatusCancelled)
	ctx := context.Background()

	resp, err := svc.ListAll(ctx, &models.ListBookingsRequest{Status: ptr.Ptr("cancelled")}, admin)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "cancelled", resp.Bookings[0].Status)

	resp, err = svc.ListAll(ctx, &models.ListBookingsRequest{FieldID: ptr.Ptr(int64(99))}, admin)
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestListAllRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(domain.StatusConfirmed)
	ctx := context.Background()

	_, err := svc.ListAll(ctx, &models.ListBookingsRequest{}, owner)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.ListAll(ctx, &models.ListBookingsRequest{}, admin)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}
