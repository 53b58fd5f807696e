package otel

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Attribute keys recorded on booking and room spans.
const (
	AttrBookingID      = "booking.id"
	AttrRoom           = "booking.room"
	AttrDate           = "booking.date"
	AttrSeriesAccepted = "series.accepted"
	AttrSeriesSkipped  = "series.skipped"
)

// Scope wraps one span. Services open a scope per operation and end it on return.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
	// SetBookingID tags the span with the booking it acts on. Empty ids are ignored.
	SetBookingID(id string)
	// SetSlot tags the span with the room and day being looked at.
	SetSlot(room, date string)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(keyValue(key, value))
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		kvs = append(kvs, keyValue(key, value))
	}

	s.span.SetAttributes(kvs...)
}

func (s *scopeImpl) SetBookingID(id string) {
	if id == "" {
		return
	}

	s.span.SetAttributes(attribute.String(AttrBookingID, id))
}

func (s *scopeImpl) SetSlot(room, date string) {
	s.span.SetAttributes(
		attribute.String(AttrRoom, room),
		attribute.String(AttrDate, date),
	)
}

// keyValue maps a value onto the closest attribute type, falling back to its string form.
func keyValue(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case time.Time:
		return attribute.String(key, val.UTC().Format(time.RFC3339))
	case time.Duration:
		return attribute.Int64(key, val.Milliseconds())
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}
