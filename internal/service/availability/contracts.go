package availability

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория расписаний вендоров
type AvailabilityRepository interface {
	GetByVendorID(ctx context.Context, vendorID int64) (*domain.VendorAvailability, error)
	Upsert(ctx context.Context, avail *domain.VendorAvailability) (*domain.VendorAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
