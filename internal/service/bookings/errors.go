package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotRebookable возвращается, когда бронирование нельзя использовать
	// как основу для повторного: оно ещё активно или услуга снята с публикации
	ErrNotRebookable = errors.New("booking is not rebookable")

	// ErrAvailabilityUnknown возвращается, когда доступность услуги
	// невозможно определить. Никогда не схлопывается в "доступно".
	ErrAvailabilityUnknown = errors.New("availability is unknown")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
