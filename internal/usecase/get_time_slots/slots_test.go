package get_time_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

func workweekAvailability(start, end types.TimeString) *domain.VendorAvailability {
	return &domain.VendorAvailability{
		VendorID:  1,
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
		WorkStart: start,
		WorkEnd:   end,
	}
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateTimeSlots_FullWorkingDay(t *testing.T) {
	avail := workweekAvailability("09:00", "11:00")
	// Понедельник, запрос заранее
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStrings(slots))
}

func TestGenerateTimeSlots_SlotMustFitWorkingHours(t *testing.T) {
	// Рабочий день до 10:45: слот 10:30-11:00 не умещается
	avail := workweekAvailability("09:00", "10:45")
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotStrings(slots))
}

func TestGenerateTimeSlots_SameDayBuffer(t *testing.T) {
	avail := workweekAvailability("09:00", "12:00")
	// Понедельник, запрос в тот же день в 9:40: порог 10:10,
	// первый слот сетки не раньше порога - 10:30
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 9, 40, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slotStrings(slots))
}

func TestGenerateTimeSlots_SameDayBufferOnGrid(t *testing.T) {
	avail := workweekAvailability("09:00", "12:00")
	// now+buffer ровно на границе сетки - слот 10:30 ещё доступен
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slotStrings(slots))
}

func TestGenerateTimeSlots_OffGridWorkStart(t *testing.T) {
	// Сетка привязана к началу рабочего дня, а не к полуночи:
	// при старте 09:15 и запросе в 09:10 порог 09:40, и слот 09:45
	// должен выдаваться - он же проходит проверку при создании брони
	avail := workweekAvailability("09:15", "11:15")
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 9, 10, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:45", "10:15"}, slotStrings(slots))
}

func TestGenerateTimeSlots_NonWorkingDay(t *testing.T) {
	avail := workweekAvailability("09:00", "18:00")
	// Воскресенье
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	avail := workweekAvailability("09:00", "18:00")
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_InvalidHours(t *testing.T) {
	// start >= end: генератор отдаёт пустой список,
	// различение с ошибкой конфигурации делает usecase
	avail := workweekAvailability("18:00", "09:00")
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_BufferPushesPastEndOfDay(t *testing.T) {
	avail := workweekAvailability("09:00", "12:00")
	// Запрос в 11:50: порог 12:20, слотов не остаётся
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 11, 50, 0, 0, time.UTC)

	slots, err := generateTimeSlots(avail, date, now, 30, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
