package get_vendor_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(vendorID int64, statusStr, dateFromStr, dateToStr, includeInactiveStr string) (*models.GetVendorBookingsRequest, error) {
	req := &models.GetVendorBookingsRequest{VendorID: vendorID}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateFromStr != "" {
		dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid dateFrom: %w", err)
		}
		req.StartDate = &dateFrom
	}

	if dateToStr != "" {
		dateTo, err := time.Parse(domain.DateFormat, dateToStr)
		if err != nil {
			return nil, fmt.Errorf("invalid dateTo: %w", err)
		}
		req.EndDate = &dateTo
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("dateTo is before dateFrom")
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
