package get_bookable_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ActiveDatesByServiceAndCustomer даты, на которые покупатель уже держит
	// активное бронирование этой услуги
	ActiveDatesByServiceAndCustomer(ctx context.Context, serviceID, customerID int64) ([]time.Time, error)
}

// AvailabilityRepository интерфейс репозитория расписаний вендоров
type AvailabilityRepository interface {
	GetByVendorID(ctx context.Context, vendorID int64) (*domain.VendorAvailability, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
