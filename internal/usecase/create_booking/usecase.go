package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	catalogClient "github.com/m04kA/SMC-MarketplaceService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	catalogClient    CatalogServiceClient
	txManager        TransactionManager
	notifier         Notifier
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		catalogClient:    catalogClient,
		txManager:        txManager,
		notifier:         notifier,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация формы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	bookingDate, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time must be in HH:MM format", ErrInvalidInput)
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Получаем расписание вендора
	avail, err := uc.availabilityRepo.GetByVendorID(ctx, service.VendorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Warn("CreateBooking: vendor id=%d has no schedule", service.VendorID)
			return nil, ErrScheduleNotConfigured
		}
		uc.logger.Error("CreateBooking: failed to get availability for vendor id=%d: %v", service.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Проверяем слот против расписания
	now := uc.timeProvider.Now()
	if err := validateSlot(avail, bookingDate, startTime, now); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed for service=%d: %v", req.ServiceID, err)
		return nil, err
	}

	booking := &domain.Booking{
		ServiceID:   req.ServiceID,
		VendorID:    service.VendorID,
		CustomerID:  req.CustomerID,
		BookingDate: bookingDate,
		StartTime:   startTime,
		Status:      domain.StatusPending,
		Amount:      service.Price,
		ServiceName: service.Name,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		Notes:       req.Notes,
	}

	// 5. Резервируем в serializable-транзакции: уникальный частичный индекс
	// по service_id гарантирует не больше одного активного бронирования
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		occupiedDates, err := uc.bookingRepo.ActiveDatesByServiceAndCustomer(ctx, req.ServiceID, req.CustomerID)
		if err != nil {
			return fmt.Errorf("%w: failed to check customer dates: %v", ErrInternal, err)
		}
		for _, occupied := range occupiedDates {
			if isSameDay(occupied, bookingDate) {
				return ErrDuplicateDate
			}
		}

		created, err = uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrActiveBookingExists) {
				return ErrServiceAlreadyBooked
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateDate) || errors.Is(err, ErrServiceAlreadyBooked) {
			uc.logger.Warn("CreateBooking: reservation rejected for service=%d: %v", req.ServiceID, err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed for service=%d: %v", req.ServiceID, err)
		return nil, err
	}

	// 6. Публикуем событие, ошибка публикации не откатывает бронирование
	if err := uc.notifier.NotifyBookingCreated(ctx, created); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", created.ID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created for service=%d, customer=%d",
		created.ID, created.ServiceID, created.CustomerID)

	return toResponse(created), nil
}
