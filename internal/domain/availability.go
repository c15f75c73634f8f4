package domain

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// VendorAvailability represents a vendor's weekly booking schedule
type VendorAvailability struct {
	VendorID int64

	// Флаги рабочих дней недели
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool

	// Рабочие часы (локальное время суток)
	WorkStart types.TimeString
	WorkEnd   types.TimeString

	// Информационный SLA на ответ вендора, в минутах. На расчёт слотов не влияет.
	ResponseTimeMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkingDay returns true if the given weekday is flagged bookable
func (a *VendorAvailability) IsWorkingDay(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return a.Monday
	case time.Tuesday:
		return a.Tuesday
	case time.Wednesday:
		return a.Wednesday
	case time.Thursday:
		return a.Thursday
	case time.Friday:
		return a.Friday
	case time.Saturday:
		return a.Saturday
	case time.Sunday:
		return a.Sunday
	default:
		return false
	}
}

// HasWorkingDays returns true if at least one weekday is flagged bookable.
// Пустое расписание - нормальный случай "нет доступности", не ошибка.
func (a *VendorAvailability) HasWorkingDays() bool {
	return a.Monday || a.Tuesday || a.Wednesday || a.Thursday ||
		a.Friday || a.Saturday || a.Sunday
}

// HasValidHours returns true if working hours form a non-empty interval.
// WorkStart >= WorkEnd - некорректная конфигурация вендора, её нельзя
// показывать клиенту как "всё занято".
func (a *VendorAvailability) HasValidHours() bool {
	if a.WorkStart.Validate() != nil || a.WorkEnd.Validate() != nil {
		return false
	}
	return a.WorkStart.IsBefore(a.WorkEnd)
}
