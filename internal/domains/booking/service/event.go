package service

import (
	"context"
	"roombook/infras/kafka"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	eventCreated = "booking.created"
	eventUpdated = "booking.updated"
	eventDeleted = "booking.deleted"
)

// Event is published for every booking that changes.
type Event struct {
	Type       string              `json:"type"`
	Booking    dto.BookingResponse `json:"booking"`
	OccurredAt string              `json:"occurredAt"`
}

// publish sends one event per booking. Delivery failures are logged and never fail the caller.
func (s *serviceImpl) publish(ctx context.Context, eventType string, bookings ...model.Booking) {
	if !s.kafka.Enabled() {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	occurredAt := s.now().Format(constant.DateFormat)
	messages := make([]kafka.Message, 0, len(bookings))

	for _, booking := range bookings {
		event := Event{Type: eventType, OccurredAt: occurredAt}
		event.Booking.FromModel(booking)

		messages = append(messages, kafka.Message{Key: booking.ID, Value: event})
	}

	if err := s.kafka.SendMessages(ctx, messages...); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", eventType).Msg("failed to publish booking events")
	}
}
