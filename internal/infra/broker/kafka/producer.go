package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Producer публикует события бронирований в Kafka.
// Создается в main с явным жизненным циклом (Close при остановке сервиса) и
// внедряется в use case'ы через интерфейс Notifier - не процесс-wide singleton.
type Producer struct {
	sync  sarama.SyncProducer
	topic string
	log   Logger
}

// NewProducer создает синхронный продьюсер событий бронирований
func NewProducer(brokers []string, topic string, log Logger) (*Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1

	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to create producer: %w", err)
	}

	return &Producer{sync: sync, topic: topic, log: log}, nil
}

// NotifyBookingCreated публикует событие о создании бронирования
func (p *Producer) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, EventBookingCreated, booking)
}

// NotifyBookingStatusChanged публикует событие о переходе статуса
func (p *Producer) NotifyBookingStatusChanged(ctx context.Context, booking *domain.Booking, action domain.BookingAction) error {
	return p.publish(ctx, domain.EventForAction(action), booking)
}

func (p *Producer) publish(_ context.Context, eventType string, booking *domain.Booking) error {
	event := BookingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		ServiceID:  booking.ServiceID,
		VendorID:   booking.VendorID,
		CustomerID: booking.CustomerID,
		Status:     string(booking.Status),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		// Ключ - serviceId: события одной услуги попадают в одну партицию
		// и читаются в порядке записи
		Key:   sarama.StringEncoder(strconv.FormatInt(booking.ServiceID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("kafka: failed to send message: %w", err)
	}

	p.log.Info("Published %s event: booking_id=%d, partition=%d, offset=%d",
		eventType, booking.ID, partition, offset)
	return nil
}

// Close закрывает продьюсер
func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

// DisabledProducer заглушка нотификатора для окружений без Kafka
type DisabledProducer struct{}

// NotifyBookingCreated ничего не делает
func (DisabledProducer) NotifyBookingCreated(_ context.Context, _ *domain.Booking) error {
	return nil
}

// NotifyBookingStatusChanged ничего не делает
func (DisabledProducer) NotifyBookingStatusChanged(_ context.Context, _ *domain.Booking, _ domain.BookingAction) error {
	return nil
}
