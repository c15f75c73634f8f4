package transition_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Request запрос на перевод бронирования в новый статус
type Request struct {
	BookingID int64
	Action    string
	ActorID   int64
	ActorRole string
	// Reason причина отмены, используется только для action=cancel
	Reason *string
}

// Response бронирование после перехода
type Response struct {
	ID                 int64
	ServiceID          int64
	VendorID           int64
	CustomerID         int64
	BookingDate        time.Time
	StartTime          types.TimeString
	Status             domain.BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time
	UpdatedAt          time.Time
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:                 booking.ID,
		ServiceID:          booking.ServiceID,
		VendorID:           booking.VendorID,
		CustomerID:         booking.CustomerID,
		BookingDate:        booking.BookingDate,
		StartTime:          booking.StartTime,
		Status:             booking.Status,
		CancellationReason: booking.CancellationReason,
		CancelledAt:        booking.CancelledAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}
