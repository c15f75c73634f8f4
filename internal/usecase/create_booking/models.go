package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	CustomerID int64
	ServiceID  int64
	Date       string
	StartTime  string
	Address    string
	City       string
	PostalCode string
	Country    string
	Notes      *string
}

// Response созданное бронирование
type Response struct {
	ID          int64
	ServiceID   int64
	VendorID    int64
	CustomerID  int64
	BookingDate time.Time
	StartTime   types.TimeString
	Status      domain.BookingStatus
	Amount      float64
	ServiceName string
	Address     string
	City        string
	PostalCode  string
	Country     string
	Notes       *string
	CreatedAt   time.Time
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:          booking.ID,
		ServiceID:   booking.ServiceID,
		VendorID:    booking.VendorID,
		CustomerID:  booking.CustomerID,
		BookingDate: booking.BookingDate,
		StartTime:   booking.StartTime,
		Status:      booking.Status,
		Amount:      booking.Amount,
		ServiceName: booking.ServiceName,
		Address:     booking.Address,
		City:        booking.City,
		PostalCode:  booking.PostalCode,
		Country:     booking.Country,
		Notes:       booking.Notes,
		CreatedAt:   booking.CreatedAt,
	}
}
