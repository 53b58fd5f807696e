// Package timezone anchors every "what day is it" decision of the booking
// service to one configured location.
//
// Booking dates and times are wall-clock values ("2025-03-14", "09:30") with no
// offset attached, so the only places a location matters are the store-owned
// timestamps (createdAt, updatedAt) and the notion of "today" used by the
// statistics view. Both go through this package:
//
//	now := timezone.Now()       // createdAt / updatedAt
//	today := timezone.Today()   // "YYYY-MM-DD" in the app location
//
// The location is read from APP_TIMEZONE using IANA names ("UTC",
// "Asia/Phnom_Penh", "Europe/London") and is initialized on import.
package timezone
