package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	catalogClient "github.com/m04kA/SMC-MarketplaceService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование видят только его клиент, его вендор и админ
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, role domain.ActorRole) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d role=%s", id, userID, role)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkBookingAccess(booking, userID, role); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetVendorBookings получает бронирования вендора с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
//
// Примеры использования:
// - Активные заявки: GetVendorBookings(ctx, &GetVendorBookingsRequest{VendorID: 123})
// - Заявки на дату: StartDate и EndDate указывают на одну дату
// - Только подтверждённые: указать Status = "accepted"
// - Вся история: IncludeInactive = true
func (s *Service) GetVendorBookings(ctx context.Context, req *models.GetVendorBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetVendorBookings: fetching bookings for vendor=%d", req.VendorID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVendorBookings: invalid filter for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByVendorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVendorBookings: repository error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: GetVendorBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVendorBookings: successfully fetched %d bookings for vendor=%d", len(bookings), req.VendorID)
	return models.FromDomainBookingList(bookings), nil
}

// CheckAvailability проверяет, свободна ли услуга для бронирования.
// Ошибка хранилища даёт ErrAvailabilityUnknown, не "доступно":
// ложное "свободно" приводит к заведомо конфликтной попытке брони.
func (s *Service) CheckAvailability(ctx context.Context, serviceID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("CheckAvailability: checking service=%d", serviceID)

	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	count, err := s.bookingRepo.CountActiveByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("CheckAvailability: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrAvailabilityUnknown, err)
	}

	available := count == 0
	s.logger.Info("CheckAvailability: service=%d available=%t (active=%d)", serviceID, available, count)

	return &models.AvailabilityResponse{
		ServiceID: serviceID,
		Available: available,
	}, nil
}

// RebookPrefill собирает черновик повторного бронирования из завершённого.
// Исходное бронирование должно быть терминальным, а услуга - опубликованной.
// Дата и время в черновик не попадают: клиент выбирает их заново.
func (s *Service) RebookPrefill(ctx context.Context, bookingID int64, customerID int64) (*models.RebookPrefillResponse, error) {
	s.logger.Info("RebookPrefill: building prefill from booking id=%d for customer=%d", bookingID, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("RebookPrefill: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("RebookPrefill: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: RebookPrefill - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("RebookPrefill: access denied for customer=%d to booking id=%d", customerID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.IsTerminal() {
		s.logger.Warn("RebookPrefill: booking id=%d is still active, status=%s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: booking is still active", ErrNotRebookable)
	}

	service, err := s.catalogClient.GetService(ctx, booking.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			s.logger.Warn("RebookPrefill: service id=%d no longer exists", booking.ServiceID)
			return nil, fmt.Errorf("%w: service no longer exists", ErrNotRebookable)
		}
		s.logger.Error("RebookPrefill: failed to get service id=%d: %v", booking.ServiceID, err)
		return nil, fmt.Errorf("%w: RebookPrefill - failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		s.logger.Warn("RebookPrefill: service id=%d is inactive", booking.ServiceID)
		return nil, fmt.Errorf("%w: service is inactive", ErrNotRebookable)
	}

	s.logger.Info("RebookPrefill: prefill built from booking id=%d", bookingID)
	return &models.RebookPrefillResponse{
		ServiceID:  booking.ServiceID,
		Address:    booking.Address,
		City:       booking.City,
		PostalCode: booking.PostalCode,
		Country:    booking.Country,
		Notes:      booking.Notes,
	}, nil
}

// Вспомогательные методы

// checkBookingAccess проверяет, что пользователь имеет доступ к бронированию
func checkBookingAccess(booking *domain.Booking, userID int64, role domain.ActorRole) error {
	if role == domain.RoleAdmin {
		return nil
	}
	if booking.CustomerID == userID || booking.VendorID == userID {
		return nil
	}
	return ErrAccessDenied
}
