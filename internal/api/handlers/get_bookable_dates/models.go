package get_bookable_dates

import (
	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	getBookableDates "github.com/m04kA/SMC-MarketplaceService/internal/usecase/get_bookable_dates"
)

// BookableDatesResponse HTTP response model
type BookableDatesResponse struct {
	ServiceID int64    `json:"serviceId"`
	VendorID  int64    `json:"vendorId"`
	Dates     []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookableDates.Response) *BookableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, date := range resp.Dates {
		dates[i] = date.Format(domain.DateFormat)
	}

	return &BookableDatesResponse{
		ServiceID: resp.ServiceID,
		VendorID:  resp.VendorID,
		Dates:     dates,
	}
}
