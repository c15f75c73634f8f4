package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MarketplaceService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID       map[int64]*domain.Booking
	byCustomer []*domain.Booking
	byVendor   []*domain.Booking
	countErr   error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byCustomer {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByVendorWithFilter(_ context.Context, filter domain.VendorBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byVendor {
		if b.VendorID != filter.VendorID {
			continue
		}
		if !filter.IncludeInactive && filter.Status == nil && !b.IsActive() {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// CountActiveByService считает по статусам хранимых бронирований, как это
// делает SQL-запрос поверх частичного индекса
func (f *fakeBookingRepo) CountActiveByService(_ context.Context, serviceID int64) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, b := range f.byID {
		if b.ServiceID == serviceID && b.IsActive() {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) ActiveDatesByServiceAndCustomer(_ context.Context, _, _ int64) ([]time.Time, error) {
	return nil, nil
}

type fakeCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalogClient) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:          1,
		ServiceID:   10,
		VendorID:    7,
		CustomerID:  42,
		BookingDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Status:      domain.StatusCompleted,
		Amount:      120.0,
		ServiceName: "Apartment cleaning",
		Address:     "Невский проспект, 1",
		City:        "Санкт-Петербург",
		PostalCode:  "191186",
		Country:     "Россия",
		Notes:       ptr.Ptr("домофон 12"),
	}
}

func activeService() *catalogservice.Service {
	return &catalogservice.Service{
		ID:       10,
		VendorID: 7,
		Name:     "Apartment cleaning",
		Price:    120.0,
		Active:   true,
	}
}

func TestGetByID_Access(t *testing.T) {
	booking := completedBooking()
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: booking}}
	svc := NewService(repo, &fakeCatalogClient{service: activeService()}, nopLogger{})

	// Клиент видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, 42, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Вендор видит бронирование своей услуги
	_, err = svc.GetByID(context.Background(), 1, 7, domain.RoleVendor)
	assert.NoError(t, err)

	// Админ видит любое
	_, err = svc.GetByID(context.Background(), 1, 999, domain.RoleAdmin)
	assert.NoError(t, err)

	// Посторонний пользователь - нет
	_, err = svc.GetByID(context.Background(), 1, 999, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Несуществующее бронирование
	_, err = svc.GetByID(context.Background(), 404, 42, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_StatusFilter(t *testing.T) {
	pending := completedBooking()
	pending.ID = 2
	pending.Status = domain.StatusPending

	repo := &fakeBookingRepo{byCustomer: []*domain.Booking{completedBooking(), pending}}
	svc := NewService(repo, &fakeCatalogClient{service: activeService()}, nopLogger{})

	// Без фильтра - вся история
	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: 42})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// С фильтром по статусу
	status := "pending"
	resp, err = svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 42,
		Status:     &status,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)

	// Неизвестный статус
	bad := "confirmed"
	_, err = svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 42,
		Status:     &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetVendorBookings(t *testing.T) {
	active := completedBooking()
	active.ID = 2
	active.Status = domain.StatusAccepted

	repo := &fakeBookingRepo{byVendor: []*domain.Booking{completedBooking(), active}}
	svc := NewService(repo, &fakeCatalogClient{service: activeService()}, nopLogger{})

	// По умолчанию только активные заявки
	resp, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{VendorID: 7})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "accepted", resp.Bookings[0].Status)

	// С includeInactive - вся история
	resp, err = svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{
		VendorID:        7,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestCheckAvailability(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeCatalogClient{service: activeService()}, nopLogger{})

	// Без бронирований услуга свободна
	resp, err := svc.CheckAvailability(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestCheckAvailability_RoundTrip(t *testing.T) {
	booking := completedBooking()
	booking.Status = domain.StatusPending
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: booking}}
	svc := NewService(repo, &fakeCatalogClient{service: activeService()}, nopLogger{})

	// Активная бронь занимает услугу
	resp, err := svc.CheckAvailability(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, resp.Available)

	booking.Status = domain.StatusAccepted
	resp, err = svc.CheckAvailability(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, resp.Available)

	// Любой терминальный статус освобождает её
	terminal := []domain.BookingStatus{
		domain.StatusRejected,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}
	for _, status := range terminal {
		booking.Status = status
		resp, err = svc.CheckAvailability(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, resp.Available, "status %s", status)
	}
}

// Ошибка хранилища никогда не интерпретируется как "свободно"
func TestCheckAvailability_Unknown(t *testing.T) {
	repo := &fakeBookingRepo{countErr: errors.New("connection refused")}
	svc := NewService(repo, &fakeCatalogClient{service: activeService()}, nopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), 10)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
}

func TestRebookPrefill(t *testing.T) {
	booking := completedBooking()
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: booking}}
	svc := NewService(repo, &fakeCatalogClient{service: activeService()}, nopLogger{})

	resp, err := svc.RebookPrefill(context.Background(), 1, 42)
	require.NoError(t, err)

	// В черновик переносится снимок адреса и заметки, но не дата и не время
	assert.Equal(t, int64(10), resp.ServiceID)
	assert.Equal(t, "Невский проспект, 1", resp.Address)
	assert.Equal(t, "Санкт-Петербург", resp.City)
	assert.Equal(t, "191186", resp.PostalCode)
	assert.Equal(t, "Россия", resp.Country)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "домофон 12", *resp.Notes)
}

func TestRebookPrefill_Matrix(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		service *catalogservice.Service
		svcErr  error
		wantErr error
	}{
		{name: "completed rebookable", status: domain.StatusCompleted, service: activeService()},
		{name: "cancelled rebookable", status: domain.StatusCancelled, service: activeService()},
		{name: "rejected rebookable", status: domain.StatusRejected, service: activeService()},
		{name: "pending not rebookable", status: domain.StatusPending, service: activeService(), wantErr: ErrNotRebookable},
		{name: "accepted not rebookable", status: domain.StatusAccepted, service: activeService(), wantErr: ErrNotRebookable},
		{name: "service inactive", status: domain.StatusCompleted, service: &catalogservice.Service{ID: 10, Active: false}, wantErr: ErrNotRebookable},
		{name: "service vanished", status: domain.StatusCompleted, svcErr: catalogservice.ErrServiceNotFound, wantErr: ErrNotRebookable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := completedBooking()
			booking.Status = tt.status
			repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: booking}}
			svc := NewService(repo, &fakeCatalogClient{service: tt.service, err: tt.svcErr}, nopLogger{})

			_, err := svc.RebookPrefill(context.Background(), 1, 42)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRebookPrefill_WrongCustomer(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: completedBooking()}}
	svc := NewService(repo, &fakeCatalogClient{service: activeService()}, nopLogger{})

	_, err := svc.RebookPrefill(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
