package domain

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer's reservation of a vendor service
type Booking struct {
	ID         int64
	ServiceID  int64
	VendorID   int64
	CustomerID int64

	// Дата и время хранятся как локальные значения, отдельно друг от друга.
	// Никогда не кодируются через UTC-метку со сдвигом пояса.
	BookingDate time.Time
	StartTime   types.TimeString

	Status BookingStatus

	// Снимок цены и названия услуги на момент создания
	Amount      float64
	ServiceName string

	Address    string
	City       string
	PostalCode string
	Country    string
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts against the conflict invariant
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusAccepted
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected ||
		b.Status == StatusCancelled ||
		b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can still be cancelled by the customer
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusAccepted
}

// VendorBookingsFilter фильтр для получения очереди бронирований вендора
type VendorBookingsFilter struct {
	VendorID        int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли терминальные бронирования
}
