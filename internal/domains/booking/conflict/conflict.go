// Package conflict decides whether a proposed booking overlaps existing ones.
//
// Two bookings overlap when they share a room and a date and their half-open
// [start, end) spans intersect. Back-to-back bookings never overlap.
package conflict

import (
	"roombook/internal/domains/booking/model"
	roomModel "roombook/internal/domains/room/model"
)

// Slot is the part of a booking that matters for overlap.
type Slot struct {
	Room      roomModel.Name
	Date      string
	StartTime string
	EndTime   string
}

// SlotOf extracts the slot of an existing booking.
func SlotOf(booking model.Booking) Slot {
	return Slot{
		Room:      booking.ClassName,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
	}
}

// Overlaps reports whether the two slots collide.
func (s Slot) Overlaps(other Slot) bool {
	return s.Room == other.Room &&
		s.Date == other.Date &&
		s.StartTime < other.EndTime &&
		s.EndTime > other.StartTime
}

// HasConflict reports whether candidate collides with any booking except excludeID.
// An empty excludeID excludes nothing.
func HasConflict(candidate Slot, existing []model.Booking, excludeID string) bool {
	for _, booking := range existing {
		if excludeID != "" && booking.ID == excludeID {
			continue
		}

		if candidate.Overlaps(SlotOf(booking)) {
			return true
		}
	}

	return false
}

// FindConflicts returns every booking except excludeID that collides with candidate.
func FindConflicts(candidate Slot, existing []model.Booking, excludeID string) []model.Booking {
	conflicts := []model.Booking{}

	for _, booking := range existing {
		if excludeID != "" && booking.ID == excludeID {
			continue
		}

		if candidate.Overlaps(SlotOf(booking)) {
			conflicts = append(conflicts, booking)
		}
	}

	return conflicts
}

// Validate reports the first pair of bookings in the collection that overlap.
func Validate(bookings []model.Booking) (model.Booking, model.Booking, bool) {
	for i := range bookings {
		for j := i + 1; j < len(bookings); j++ {
			if SlotOf(bookings[i]).Overlaps(SlotOf(bookings[j])) {
				return bookings[i], bookings[j], true
			}
		}
	}

	return model.Booking{}, model.Booking{}, false
}
