package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// validateRequest проверяет форму запроса без обращения к хранилищу
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id must be positive", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if _, err := types.NewTimeStringFromString(req.StartTime); err != nil {
		return fmt.Errorf("%w: start_time must be in HH:MM format", ErrInvalidInput)
	}

	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address exceeds %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if len(req.City) > domain.MaxCityLength {
		return fmt.Errorf("%w: city exceeds %d characters", ErrInvalidInput, domain.MaxCityLength)
	}

	if len(req.PostalCode) > domain.MaxPostalCodeLength {
		return fmt.Errorf("%w: postal_code exceeds %d characters", ErrInvalidInput, domain.MaxPostalCodeLength)
	}

	if req.Country == "" {
		return fmt.Errorf("%w: country is required", ErrInvalidInput)
	}
	if len(req.Country) > domain.MaxCountryLength {
		return fmt.Errorf("%w: country exceeds %d characters", ErrInvalidInput, domain.MaxCountryLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlot проверяет, что дата и время попадают в расписание вендора.
//
// Время должно лежать на сетке слотов, слот должен целиком умещаться в
// рабочие часы, а для сегодняшней даты - начинаться не раньше now + буфер.
func validateSlot(
	avail *domain.VendorAvailability,
	date time.Time,
	startTime types.TimeString,
	now time.Time,
) error {
	if !avail.HasWorkingDays() || !avail.HasValidHours() {
		return ErrInvalidSchedule
	}

	if isDateInPast(date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	horizon := now.AddDate(0, 0, domain.BookableHorizonDays)
	if date.After(time.Date(horizon.Year(), horizon.Month(), horizon.Day(), 23, 59, 59, 0, date.Location())) {
		return fmt.Errorf("%w: date is beyond the booking horizon", ErrInvalidDate)
	}

	if !avail.IsWorkingDay(date.Weekday()) {
		return ErrVendorClosed
	}

	startMin, err := startTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	workStartMin, err := avail.WorkStart.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: validateSlot - work_start: %v", ErrInternal, err)
	}
	workEndMin, err := avail.WorkEnd.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: validateSlot - work_end: %v", ErrInternal, err)
	}

	if startMin < workStartMin || startMin+domain.DefaultSlotIntervalMinutes > workEndMin {
		return ErrOutsideWorkingHours
	}

	// Время должно лежать на сетке слотов, отсчитываемой от начала рабочего дня
	if (startMin-workStartMin)%domain.DefaultSlotIntervalMinutes != 0 {
		return fmt.Errorf("%w: start_time is not aligned to the slot grid", ErrInvalidInput)
	}

	if isSameDay(date, now) {
		cutoff := now.Hour()*60 + now.Minute() + domain.BookingBufferMinutes
		if startMin < cutoff {
			return ErrTooLateToBook
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
