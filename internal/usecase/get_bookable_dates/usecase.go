package get_bookable_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	catalogClient "github.com/m04kA/SMC-MarketplaceService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных дат бронирования услуги
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	catalogClient    CatalogServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		catalogClient:    catalogClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookableDates: service=%d, customer=%d", req.ServiceID, req.CustomerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetBookableDates: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetBookableDates: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем расписание вендора
	avail, err := uc.availabilityRepo.GetByVendorID(ctx, service.VendorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Warn("GetBookableDates: vendor id=%d has no schedule", service.VendorID)
			return nil, ErrScheduleNotConfigured
		}
		uc.logger.Error("GetBookableDates: failed to get availability for vendor id=%d: %v", service.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Даты, на которые покупатель уже держит активное бронирование
	// этой услуги, исключаются из выдачи
	activeDates, err := uc.bookingRepo.ActiveDatesByServiceAndCustomer(ctx, req.ServiceID, req.CustomerID)
	if err != nil {
		uc.logger.Error("GetBookableDates: failed to get active dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get active dates: %v", ErrInternal, err)
	}

	// 5. Генерируем даты в пределах горизонта
	now := uc.timeProvider.Now()
	dates := generateBookableDates(avail, now, domain.BookableHorizonDays, excludedDateSet(activeDates))

	uc.logger.Info("GetBookableDates: %d dates available for service=%d, customer=%d",
		len(dates), req.ServiceID, req.CustomerID)

	return &Response{
		ServiceID: req.ServiceID,
		VendorID:  service.VendorID,
		Dates:     dates,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	return nil
}
