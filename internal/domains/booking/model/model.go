package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	roomModel "roombook/internal/domains/room/model"
	"roombook/shared/model"
	"slices"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldSeq         = "seq"
	FieldDate        = "date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldGroupName   = "group_name"
	FieldClassName   = "class_name"
	FieldBookedBy    = "booked_by"
	FieldPurpose     = "purpose"
	FieldDescription = "description"
	FieldAttendees   = "attendees"
	FieldStatus      = "status"
	FieldRecurring   = "recurring"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusConfirmed, StatusPending, StatusCancelled}

func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// RecurringPattern describes how a series repeats. EndDate is inclusive.
type RecurringPattern struct {
	Frequency Frequency `json:"frequency"`
	Interval  int       `json:"interval"`
	EndDate   string    `json:"endDate"`
}

var errUnsupportedRecurringValue = errors.New("unsupported recurring column type")

// Scan implements sql.Scanner. The column holds the pattern as JSON text.
func (p *RecurringPattern) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(value)
	case []byte:
		raw = value
	default:
		return fmt.Errorf("%w: %T", errUnsupportedRecurringValue, src)
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("failed to decode recurring pattern: %w", err)
	}

	return nil
}

// Value implements driver.Valuer.
func (p RecurringPattern) Value() (driver.Value, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recurring pattern: %w", err)
	}

	return string(raw), nil
}

// Booking is a reservation of one room for a span of one day.
// Date is YYYY-MM-DD and the times are zero-padded HH:MM, so string order is time order.
type Booking struct {
	ID          string            `db:"id"          json:"id"`
	Date        string            `db:"date"        json:"date"`
	StartTime   string            `db:"start_time"  json:"startTime"`
	EndTime     string            `db:"end_time"    json:"endTime"`
	GroupName   string            `db:"group_name"  json:"groupName"`
	ClassName   roomModel.Name    `db:"class_name"  json:"className"`
	BookedBy    string            `db:"booked_by"   json:"bookedBy"`
	Purpose     string            `db:"purpose"     json:"purpose"`
	Description *string           `db:"description" json:"description,omitempty"`
	Attendees   *int              `db:"attendees"   json:"attendees,omitempty"`
	Status      Status            `db:"status"      json:"status"`
	Recurring   *RecurringPattern `db:"recurring"   json:"recurring,omitempty"`
	model.Metadata
}
