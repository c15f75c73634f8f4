package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrActiveBookingExists возвращается, когда вставка нарушает частичный
	// уникальный индекс "одно активное бронирование на услугу".
	// Проигравший гонку вызов получает именно эту ошибку.
	ErrActiveBookingExists = errors.New("booking.repository: service already has an active booking")

	// ErrStatusChanged возвращается, когда compare-and-swap обновление статуса
	// не нашло строку в ожидаемом статусе (статус изменился конкурентно)
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
