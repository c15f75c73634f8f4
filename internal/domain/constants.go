package domain

// Availability calculation constants
const (
	// DefaultSlotIntervalMinutes шаг сетки временных слотов
	DefaultSlotIntervalMinutes = 30

	// BookingBufferMinutes минимальный запас между "сейчас" и слотом того же дня
	BookingBufferMinutes = 30

	// BookableHorizonDays горизонт расчёта доступных дат
	BookableHorizonDays = 90
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAddressLength            = 200
	MaxCityLength               = 100
	MaxPostalCodeLength         = 20
	MaxCountryLength            = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, учитываемые инвариантом "одно активное
// бронирование на услугу"
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
}

// TerminalStatuses финальные статусы: переходы из них запрещены,
// бронирование становится доступным для повторного оформления
var TerminalStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}
