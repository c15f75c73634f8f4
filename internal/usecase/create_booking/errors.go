package create_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound услуга не найдена в CatalogService
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInactive услуга снята с публикации
	ErrServiceInactive = errors.New("service is inactive")

	// ErrScheduleNotConfigured у вендора не настроено расписание
	ErrScheduleNotConfigured = errors.New("vendor schedule not configured")

	// ErrInvalidSchedule расписание вендора некорректно (нет рабочих дней или start >= end)
	ErrInvalidSchedule = errors.New("vendor schedule is invalid")

	// ErrVendorClosed вендор не работает в выбранный день
	ErrVendorClosed = errors.New("vendor is closed on the selected date")

	// ErrOutsideWorkingHours выбранное время вне рабочих часов вендора
	ErrOutsideWorkingHours = errors.New("start time is outside working hours")

	// ErrTooLateToBook слот в прошлом или не проходит буфер для бронирования день в день
	ErrTooLateToBook = errors.New("too late to book the selected slot")

	// ErrInvalidDate некорректная дата бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDuplicateDate у клиента уже есть активное бронирование этой услуги на эту дату
	ErrDuplicateDate = errors.New("customer already has an active booking for this date")

	// ErrServiceAlreadyBooked услуга уже забронирована другим клиентом
	ErrServiceAlreadyBooked = errors.New("service already has an active booking")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
