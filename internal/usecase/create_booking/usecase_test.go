package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MarketplaceService/internal/integrations/catalogservice"
)

// fakeBookingRepo хранит бронирования в памяти и повторяет поведение
// частичного уникального индекса: не больше одного активного на услугу
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.ServiceID == booking.ServiceID && existing.IsActive() {
			return nil, bookingRepo.ErrActiveBookingExists
		}
	}

	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)

	out := created
	return &out, nil
}

func (f *fakeBookingRepo) ActiveDatesByServiceAndCustomer(_ context.Context, serviceID, customerID int64) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var dates []time.Time
	for _, existing := range f.bookings {
		if existing.ServiceID == serviceID && existing.CustomerID == customerID && existing.IsActive() {
			dates = append(dates, existing.BookingDate)
		}
	}
	return dates, nil
}

type fakeAvailabilityRepo struct {
	avail *domain.VendorAvailability
	err   error
}

func (f *fakeAvailabilityRepo) GetByVendorID(_ context.Context, _ int64) (*domain.VendorAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.avail, nil
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

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []*domain.Booking
}

func (f *fakeNotifier) NotifyBookingCreated(_ context.Context, booking *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, booking)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validService() *catalogservice.Service {
	return &catalogservice.Service{
		ID:       10,
		VendorID: 7,
		Name:     "Apartment cleaning",
		Category: "cleaning",
		Price:    120.0,
		Active:   true,
	}
}

func validAvailability() *domain.VendorAvailability {
	return &domain.VendorAvailability{
		VendorID:  7,
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
		WorkStart: "09:00",
		WorkEnd:   "18:00",
	}
}

func validRequest() *Request {
	return &Request{
		CustomerID: 42,
		ServiceID:  10,
		Date:       "2025-06-04", // среда
		StartTime:  "10:00",
		Address:    "Невский проспект, 1",
		City:       "Санкт-Петербург",
		PostalCode: "191186",
		Country:    "Россия",
	}
}

func newTestUseCase(repo *fakeBookingRepo, avail *fakeAvailabilityRepo, catalog *fakeCatalogClient, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, avail, catalog, fakeTxManager{}, notifier, nopLogger{})
	// Понедельник 2025-06-02, 12:00
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()}, &fakeCatalogClient{service: validService()}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, int64(7), resp.VendorID)
	assert.Equal(t, int64(42), resp.CustomerID)
	assert.Equal(t, 120.0, resp.Amount)
	assert.Equal(t, "Apartment cleaning", resp.ServiceName)
	assert.Equal(t, "10:00", resp.StartTime.String())

	// Событие booking.created опубликовано
	assert.Len(t, notifier.events, 1)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{err: catalogservice.ErrServiceNotFound}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceInactive(t *testing.T) {
	service := validService()
	service.Active = false

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: service}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_ScheduleNotConfigured(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExecute_InvalidSchedule(t *testing.T) {
	avail := validAvailability()
	avail.WorkStart = "18:00"
	avail.WorkEnd = "09:00"

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: avail},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestExecute_VendorClosed(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	req := validRequest()
	req.Date = "2025-06-07" // суббота, не рабочий день

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrVendorClosed)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	tests := []string{"08:30", "18:00", "17:45"}
	for _, startTime := range tests {
		req := validRequest()
		req.StartTime = startTime

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideWorkingHours, "start_time=%s", startTime)
	}
}

func TestExecute_OffGridStartTime(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	req := validRequest()
	req.StartTime = "10:15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SameDayBuffer(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	// Бронирование день в день: now=12:00, буфер 30 минут
	req := validRequest()
	req.Date = "2025-06-02"
	req.StartTime = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Слот на границе буфера проходит
	req.StartTime = "12:30"
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "12:30", resp.StartTime.String())
}

func TestExecute_PastDate(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	req := validRequest()
	req.Date = "2025-05-30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_BeyondHorizon(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	req := validRequest()
	req.Date = "2025-09-10" // дальше 90 дней от 2025-06-02

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ServiceAlreadyBooked(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Другой клиент пытается занять ту же услугу
	req := validRequest()
	req.CustomerID = 43
	req.Date = "2025-06-06"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceAlreadyBooked)
}

func TestExecute_TerminalBookingReleasesService(t *testing.T) {
	// Конфликт держит только активная бронь: любой терминальный статус
	// выводит услугу из-под частичного индекса, и её можно занять снова
	terminal := []domain.BookingStatus{
		domain.StatusRejected,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, status := range terminal {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
				&fakeCatalogClient{service: validService()}, &fakeNotifier{})

			first, err := uc.Execute(context.Background(), validRequest())
			require.NoError(t, err)

			// Пока бронь активна, услуга занята
			req := validRequest()
			req.CustomerID = 43
			req.Date = "2025-06-06"
			_, err = uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrServiceAlreadyBooked)

			repo.mu.Lock()
			repo.bookings[0].Status = status
			repo.mu.Unlock()

			second, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusPending, second.Status)
			assert.NotEqual(t, first.ID, second.ID)
		})
	}
}

func TestExecute_DuplicateDateSameCustomer(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Тот же клиент, та же услуга, та же дата: собственная защита
	// от дублей срабатывает раньше уникального индекса
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateDate)
}

func TestExecute_ConcurrentReservations(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{avail: validAvailability()},
		&fakeCatalogClient{service: validService()}, notifier)

	const workers = 20

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(customerID int64) {
			defer wg.Done()
			req := validRequest()
			req.CustomerID = customerID
			_, err := uc.Execute(context.Background(), req)
			results <- err
		}(int64(100 + i))
	}

	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrServiceAlreadyBooked):
			conflicted++
		}
	}

	// Ровно одно бронирование проходит, остальные получают конфликт
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)
	assert.Len(t, notifier.events, 1)
}

func TestValidateRequest_Shape(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero customer", mutate: func(r *Request) { r.CustomerID = 0 }},
		{name: "negative service", mutate: func(r *Request) { r.ServiceID = -1 }},
		{name: "bad date", mutate: func(r *Request) { r.Date = "04.06.2025" }},
		{name: "bad time", mutate: func(r *Request) { r.StartTime = "10-00" }},
		{name: "empty address", mutate: func(r *Request) { r.Address = "" }},
		{name: "empty city", mutate: func(r *Request) { r.City = "" }},
		{name: "empty country", mutate: func(r *Request) { r.Country = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(validRequest()))
}
