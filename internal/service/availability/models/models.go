package models

import (
	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// UpdateScheduleRequest запрос на обновление расписания вендора
type UpdateScheduleRequest struct {
	VendorID int64 `json:"vendorId"`

	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`

	WorkStart string `json:"workStart"` // "09:00"
	WorkEnd   string `json:"workEnd"`   // "18:00"

	ResponseTimeMinutes int `json:"responseTimeMinutes,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateScheduleRequest) ToDomain() (*domain.VendorAvailability, error) {
	workStart, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return nil, err
	}

	return &domain.VendorAvailability{
		VendorID:            r.VendorID,
		Monday:              r.Monday,
		Tuesday:             r.Tuesday,
		Wednesday:           r.Wednesday,
		Thursday:            r.Thursday,
		Friday:              r.Friday,
		Saturday:            r.Saturday,
		Sunday:              r.Sunday,
		WorkStart:           workStart,
		WorkEnd:             workEnd,
		ResponseTimeMinutes: r.ResponseTimeMinutes,
	}, nil
}

// ScheduleResponse ответ с расписанием вендора
type ScheduleResponse struct {
	VendorID int64 `json:"vendorId"`

	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`

	WorkStart string `json:"workStart"`
	WorkEnd   string `json:"workEnd"`

	ResponseTimeMinutes int `json:"responseTimeMinutes"`
}

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.VendorAvailability) *ScheduleResponse {
	if a == nil {
		return nil
	}

	return &ScheduleResponse{
		VendorID:            a.VendorID,
		Monday:              a.Monday,
		Tuesday:             a.Tuesday,
		Wednesday:           a.Wednesday,
		Thursday:            a.Thursday,
		Friday:              a.Friday,
		Saturday:            a.Saturday,
		Sunday:              a.Sunday,
		WorkStart:           a.WorkStart.String(),
		WorkEnd:             a.WorkEnd.String(),
		ResponseTimeMinutes: a.ResponseTimeMinutes,
	}
}
