package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	createBooking "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   int64   `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Address     string  `json:"address"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postalCode"`
	Country     string  `json:"country"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	ServiceID   int64   `json:"serviceId"`
	VendorID    int64   `json:"vendorId"`
	CustomerID  int64   `json:"customerId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	ServiceName string  `json:"serviceName"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postalCode,omitempty"`
	Country     string  `json:"country"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) *createBooking.Request {
	return &createBooking.Request{
		CustomerID: customerID,
		ServiceID:  r.ServiceID,
		Date:       r.BookingDate,
		StartTime:  r.StartTime,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Notes:      r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		ServiceID:   resp.ServiceID,
		VendorID:    resp.VendorID,
		CustomerID:  resp.CustomerID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Status:      string(resp.Status),
		Amount:      resp.Amount,
		ServiceName: resp.ServiceName,
		Address:     resp.Address,
		City:        resp.City,
		PostalCode:  resp.PostalCode,
		Country:     resp.Country,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
