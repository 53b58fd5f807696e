package dto

import (
	bookingDto "roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/room/model"
)

type RoomResponse struct {
	Name          string `json:"name"`
	TodayBookings int    `json:"todayBookings"`
}

type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (w *WindowResponse) FromModel(window model.Window) {
	w.Start = window.Start
	w.End = window.End
}

// AvailabilityResponse is one room's day: what is booked and what is still free inside opening hours.
type AvailabilityResponse struct {
	Room     string                       `json:"room"`
	Date     string                       `json:"date"`
	Open     string                       `json:"open"`
	Close    string                       `json:"close"`
	Bookings []bookingDto.BookingResponse `json:"bookings"`
	Free     []WindowResponse             `json:"free"`
}

func FromWindows(windows []model.Window) []WindowResponse {
	res := make([]WindowResponse, len(windows))
	for i, window := range windows {
		res[i].FromModel(window)
	}

	return res
}
