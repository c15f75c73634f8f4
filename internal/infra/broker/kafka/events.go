package kafka

import "time"

// Event types published to the booking-events topic
const (
	EventBookingCreated = "booking.created"
)

// BookingEvent событие изменения бронирования, публикуемое в Kafka.
// Потребители (нотификации, аналитика) не должны трактовать событие как
// актуальное состояние: перед действием клиент обязан перечитать бронирование.
type BookingEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	ServiceID  int64     `json:"serviceId"`
	VendorID   int64     `json:"vendorId"`
	CustomerID int64     `json:"customerId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
