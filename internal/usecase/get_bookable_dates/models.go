package get_bookable_dates

import "time"

// Request модель запроса на получение доступных дат
type Request struct {
	ServiceID  int64 // ID услуги
	CustomerID int64 // ID покупателя (для исключения уже занятых им дат)
}

// Response модель ответа со списком доступных дат
type Response struct {
	ServiceID int64       // ID услуги
	VendorID  int64       // ID вендора
	Dates     []time.Time // Даты по возрастанию в пределах горизонта
}
