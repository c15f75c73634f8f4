package get_bookable_dates

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("get_bookable_dates: service not found")

	// ErrScheduleNotConfigured возвращается, когда у вендора нет расписания
	ErrScheduleNotConfigured = errors.New("get_bookable_dates: vendor schedule is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_bookable_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_bookable_dates: internal error")
)
