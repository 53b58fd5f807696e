// Package recurrence expands a booking and a repeat pattern into dated occurrences.
package recurrence

import (
	"errors"
	"roombook/internal/domains/booking/model"
	"roombook/shared/constant"
	"time"
)

// MaxOccurrences bounds the size of a single series.
const MaxOccurrences = 1000

const daysPerWeek = 7

var ErrInvalidPattern = errors.New("Invalid recurring pattern") //nolint:revive,stylecheck

// Dates lists the occurrence dates from start through pattern.EndDate inclusive.
// Monthly steps keep the starting day of month and clamp it in shorter months.
func Dates(start string, pattern model.RecurringPattern) ([]string, error) {
	if !pattern.Frequency.IsValid() || pattern.Interval <= 0 || pattern.EndDate == "" {
		return nil, ErrInvalidPattern
	}

	base, err := time.Parse(constant.DayFormat, start)
	if err != nil {
		return nil, ErrInvalidPattern
	}

	end, err := time.Parse(constant.DayFormat, pattern.EndDate)
	if err != nil || end.Before(base) {
		return nil, ErrInvalidPattern
	}

	dates := []string{}

	for step := 0; ; step++ {
		current := advance(base, pattern.Frequency, step*pattern.Interval)
		if current.After(end) {
			break
		}

		if len(dates) == MaxOccurrences {
			return nil, ErrInvalidPattern
		}

		dates = append(dates, current.Format(constant.DayFormat))
	}

	return dates, nil
}

// Expand copies base onto every date of the series. Each copy carries the pattern;
// ids are left for the caller to assign.
func Expand(base model.Booking, pattern model.RecurringPattern) ([]model.Booking, error) {
	dates, err := Dates(base.Date, pattern)
	if err != nil {
		return nil, err
	}

	occurrences := make([]model.Booking, 0, len(dates))

	for _, date := range dates {
		occurrence := base
		occurrence.Date = date

		recurring := pattern
		occurrence.Recurring = &recurring

		occurrences = append(occurrences, occurrence)
	}

	return occurrences, nil
}

func advance(base time.Time, frequency model.Frequency, units int) time.Time {
	switch frequency {
	case model.FrequencyWeekly:
		return base.AddDate(0, 0, units*daysPerWeek)
	case model.FrequencyMonthly:
		return addMonthsClamped(base, units)
	default:
		return base.AddDate(0, 0, units)
	}
}

// addMonthsClamped moves months forward keeping the day of month, or the last
// day of the target month when it is shorter.
func addMonthsClamped(base time.Time, months int) time.Time {
	firstOfTarget := time.Date(base.Year(), base.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := base.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}
