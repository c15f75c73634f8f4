package get_time_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("get_time_slots: service not found")

	// ErrScheduleNotConfigured возвращается, когда у вендора нет расписания
	ErrScheduleNotConfigured = errors.New("get_time_slots: vendor schedule is not configured")

	// ErrInvalidSchedule возвращается при некорректной конфигурации рабочих
	// часов вендора (start >= end). Это проблема настройки вендора, а не
	// "все слоты заняты" - клиенту они показываются по-разному.
	ErrInvalidSchedule = errors.New("get_time_slots: vendor working hours are misconfigured")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_time_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_time_slots: internal error")
)
