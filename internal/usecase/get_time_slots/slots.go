package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// generateTimeSlots генерирует упорядоченный список времён начала слотов на
// указанную дату. Слоты идут с шагом intervalMinutes от начала рабочего дня,
// слот должен целиком умещаться в рабочие часы.
//
// Для сегодняшней даты исключаются слоты раньше now + bufferMinutes. Сетка
// привязана к началу рабочего дня, поэтому порог не округляется: первым
// выдаётся первый слот сетки, не раньше порога.
//
// Некорректные рабочие часы (start >= end) дают пустой список - различение
// "нет слотов" и "ошибка конфигурации" делает вызывающий usecase.
func generateTimeSlots(
	avail *domain.VendorAvailability,
	date time.Time,
	now time.Time,
	intervalMinutes int,
	bufferMinutes int,
) ([]types.TimeString, error) {
	if isDateInPast(date, now) {
		return []types.TimeString{}, nil
	}

	if !avail.IsWorkingDay(date.Weekday()) {
		return []types.TimeString{}, nil
	}

	if !avail.HasValidHours() {
		return []types.TimeString{}, nil
	}

	startMin, err := avail.WorkStart.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}
	endMin, err := avail.WorkEnd.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}

	// Нижняя граница: для сегодняшней даты не раньше now + buffer
	minAllowed := startMin
	if isSameDay(date, now) {
		cutoff := now.Hour()*60 + now.Minute() + bufferMinutes
		if cutoff > minAllowed {
			minAllowed = cutoff
		}
	}

	slots := make([]types.TimeString, 0)
	for cur := startMin; cur+intervalMinutes <= endMin; cur += intervalMinutes {
		if cur < minAllowed {
			continue
		}
		slot, err := types.FromMinutes(cur)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
