package recurrence_test

import (
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/recurrence"
	roomModel "roombook/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDates(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		pattern  model.RecurringPattern
		expected []string
	}{
		{
			name:     "daily every other day",
			start:    "2025-03-01",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 2, EndDate: "2025-03-07"},
			expected: []string{"2025-03-01", "2025-03-03", "2025-03-05", "2025-03-07"},
		},
		{
			name:     "daily end not on a step",
			start:    "2025-03-01",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 2, EndDate: "2025-03-06"},
			expected: []string{"2025-03-01", "2025-03-03", "2025-03-05"},
		},
		{
			name:     "single occurrence when end equals start",
			start:    "2025-03-01",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyWeekly, Interval: 1, EndDate: "2025-03-01"},
			expected: []string{"2025-03-01"},
		},
		{
			name:     "weekly",
			start:    "2025-03-03",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyWeekly, Interval: 1, EndDate: "2025-03-24"},
			expected: []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24"},
		},
		{
			name:     "fortnightly",
			start:    "2025-03-03",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyWeekly, Interval: 2, EndDate: "2025-03-31"},
			expected: []string{"2025-03-03", "2025-03-17", "2025-03-31"},
		},
		{
			name:     "monthly clamps to month end and recovers",
			start:    "2025-01-31",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyMonthly, Interval: 1, EndDate: "2025-04-30"},
			expected: []string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"},
		},
		{
			name:     "monthly in a leap year",
			start:    "2024-01-31",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyMonthly, Interval: 1, EndDate: "2024-02-29"},
			expected: []string{"2024-01-31", "2024-02-29"},
		},
		{
			name:     "quarterly across a year",
			start:    "2025-11-15",
			pattern:  model.RecurringPattern{Frequency: model.FrequencyMonthly, Interval: 3, EndDate: "2026-06-01"},
			expected: []string{"2025-11-15", "2026-02-15", "2026-05-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := recurrence.Dates(tt.start, tt.pattern)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, dates)
		})
	}
}

func TestDates_InvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		pattern model.RecurringPattern
	}{
		{name: "missing frequency", start: "2025-03-01", pattern: model.RecurringPattern{Interval: 1, EndDate: "2025-03-05"}},
		{name: "unknown frequency", start: "2025-03-01", pattern: model.RecurringPattern{Frequency: "yearly", Interval: 1, EndDate: "2025-03-05"}},
		{name: "zero interval", start: "2025-03-01", pattern: model.RecurringPattern{Frequency: model.FrequencyDaily, EndDate: "2025-03-05"}},
		{name: "negative interval", start: "2025-03-01", pattern: model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: -1, EndDate: "2025-03-05"}},
		{name: "missing end date", start: "2025-03-01", pattern: model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1}},
		{name: "malformed end date", start: "2025-03-01", pattern: model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: "03/05/2025"}},
		{name: "end before start", start: "2025-03-01", pattern: model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: "2025-02-28"}},
		{name: "malformed start", start: "tomorrow", pattern: model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: "2025-03-05"}},
		{name: "too many occurrences", start: "2025-01-01", pattern: model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: "2030-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recurrence.Dates(tt.start, tt.pattern)

			assert.ErrorIs(t, err, recurrence.ErrInvalidPattern)
		})
	}
}

func TestDates_MaxOccurrencesBoundary(t *testing.T) {
	pattern := model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: "2027-09-27"}

	dates, err := recurrence.Dates("2025-01-01", pattern)

	require.NoError(t, err)
	assert.Len(t, dates, recurrence.MaxOccurrences)
	assert.Equal(t, "2027-09-27", dates[len(dates)-1])

	pattern.EndDate = "2027-09-28"

	_, err = recurrence.Dates("2025-01-01", pattern)
	assert.ErrorIs(t, err, recurrence.ErrInvalidPattern)
}

func TestExpand(t *testing.T) {
	attendees := 12
	base := model.Booking{
		Date:      "2025-03-03",
		StartTime: "09:00",
		EndTime:   "10:00",
		GroupName: "Grade 10",
		ClassName: roomModel.Seminar,
		BookedBy:  "Dara",
		Purpose:   "Weekly review",
		Attendees: &attendees,
		Status:    model.StatusConfirmed,
	}
	pattern := model.RecurringPattern{Frequency: model.FrequencyWeekly, Interval: 1, EndDate: "2025-03-17"}

	occurrences, err := recurrence.Expand(base, pattern)
	require.NoError(t, err)
	require.Len(t, occurrences, 3)

	for i, date := range []string{"2025-03-03", "2025-03-10", "2025-03-17"} {
		assert.Equal(t, date, occurrences[i].Date)
		assert.Equal(t, base.StartTime, occurrences[i].StartTime)
		assert.Equal(t, base.ClassName, occurrences[i].ClassName)
		require.NotNil(t, occurrences[i].Recurring)
		assert.Equal(t, pattern, *occurrences[i].Recurring)
		assert.Empty(t, occurrences[i].ID)
	}

	occurrences[0].Recurring.Interval = 5
	assert.Equal(t, 1, occurrences[1].Recurring.Interval)
	assert.Nil(t, base.Recurring)
}
