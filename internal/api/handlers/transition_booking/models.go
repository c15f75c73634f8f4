package transition_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	transitionBooking "github.com/m04kA/SMC-MarketplaceService/internal/usecase/transition_booking"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Action string  `json:"action"` // accept | reject | complete | cancel
	Reason *string `json:"reason,omitempty"`
}

// BookingStatusResponse HTTP response model
type BookingStatusResponse struct {
	ID                 int64   `json:"id"`
	ServiceID          int64   `json:"serviceId"`
	VendorID           int64   `json:"vendorId"`
	CustomerID         int64   `json:"customerId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response) *BookingStatusResponse {
	out := &BookingStatusResponse{
		ID:                 resp.ID,
		ServiceID:          resp.ServiceID,
		VendorID:           resp.VendorID,
		CustomerID:         resp.CustomerID,
		BookingDate:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		Status:             string(resp.Status),
		CancellationReason: resp.CancellationReason,
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		cancelledStr := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledStr
	}

	return out
}
