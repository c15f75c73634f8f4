package transition_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPermissionDenied действие не разрешено для вызывающего
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidTransition переход не разрешён таблицей переходов
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
