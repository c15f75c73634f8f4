package get_time_slots

import (
	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-MarketplaceService/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	ServiceID int64    `json:"serviceId"`
	VendorID  int64    `json:"vendorId"`
	Date      string   `json:"date"`
	Slots     []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &TimeSlotsResponse{
		ServiceID: resp.ServiceID,
		VendorID:  resp.VendorID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
