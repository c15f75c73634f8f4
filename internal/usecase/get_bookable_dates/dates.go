package get_bookable_dates

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// generateBookableDates возвращает упорядоченный по возрастанию список дат из
// [referenceDate, referenceDate+horizonDays], день недели которых отмечен
// рабочим и которых нет в excluded.
//
// Пустое расписание (ни одного рабочего дня) даёт пустой список - это
// нормальный случай "нет доступности", не ошибка.
func generateBookableDates(
	avail *domain.VendorAvailability,
	referenceDate time.Time,
	horizonDays int,
	excluded map[string]struct{},
) []time.Time {
	dates := make([]time.Time, 0)

	if !avail.HasWorkingDays() {
		return dates
	}

	start := time.Date(
		referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
		0, 0, 0, 0, referenceDate.Location(),
	)

	for offset := 0; offset <= horizonDays; offset++ {
		date := start.AddDate(0, 0, offset)

		if !avail.IsWorkingDay(date.Weekday()) {
			continue
		}

		if _, taken := excluded[date.Format(domain.DateFormat)]; taken {
			continue
		}

		dates = append(dates, date)
	}

	return dates
}

// excludedDateSet строит множество дат в формате YYYY-MM-DD
func excludedDateSet(dates []time.Time) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d.Format(domain.DateFormat)] = struct{}{}
	}
	return set
}
