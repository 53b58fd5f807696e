package service

import (
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	roomModel "roombook/internal/domains/room/model"
)

// statistics counts bookings per room and status and splits them around today.
func statistics(bookings []model.Booking, today string) dto.StatisticsResponse {
	res := dto.StatisticsResponse{
		Total:    len(bookings),
		ByRoom:   make(map[string]int, len(roomModel.Catalogue)),
		ByStatus: make(map[string]int, len(model.Statuses)),
	}

	for _, room := range roomModel.Catalogue {
		res.ByRoom[room.String()] = 0
	}

	for _, status := range model.Statuses {
		res.ByStatus[string(status)] = 0
	}

	for _, booking := range bookings {
		res.ByRoom[booking.ClassName.String()]++
		res.ByStatus[string(booking.Status)]++

		switch {
		case booking.Date == today:
			res.Today++
		case booking.Date > today:
			res.Upcoming++
		default:
			res.Past++
		}
	}

	return res
}
