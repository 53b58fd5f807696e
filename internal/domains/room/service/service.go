package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"
	"roombook/config"
	"roombook/infras/otel"
	bookingModel "roombook/internal/domains/booking/model"
	bookingDto "roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/repository"
	"roombook/internal/domains/room/model"
	"roombook/internal/domains/room/model/dto"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/timezone"
	"roombook/shared/validator"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	MessageNotFound    = "Room not found"
	MessageInvalidDate = "date must be a valid date (YYYY-MM-DD)"
)

type Room interface {
	List(ctx context.Context) ([]dto.RoomResponse, error)
	Availability(ctx context.Context, name string, date string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	cfg  *config.Config
	otel otel.Otel
	now  func() time.Time
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		now:  timezone.Now,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	today := s.now().Format(constant.DayFormat)
	counts := make(map[model.Name]int, len(model.Catalogue))

	for _, booking := range bookings {
		if booking.Date == today {
			counts[booking.ClassName]++
		}
	}

	res = make([]dto.RoomResponse, len(model.Catalogue))
	for i, name := range model.Catalogue {
		res[i] = dto.RoomResponse{Name: name.String(), TodayBookings: counts[name]}
	}

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, name string, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room := model.Name(name)
	if !room.IsValid() {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	if date == constant.Empty {
		date = s.now().Format(constant.DayFormat)
	}

	if err = validator.ValidateVar(date, "day"); err != nil {
		return res, failure.BadRequestFromString(MessageInvalidDate) // nolint:wrapcheck
	}

	scope.SetSlot(name, date)

	bookings, err := s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return res, fmt.Errorf("failed to read bookings: %w", err)
	}

	held := make([]bookingModel.Booking, 0)

	for _, booking := range bookings {
		if booking.ClassName == room && booking.Date == date {
			held = append(held, booking)
		}
	}

	slices.SortStableFunc(held, func(a, b bookingModel.Booking) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})

	open, closing := s.cfg.App.OpeningHours.Open, s.cfg.App.OpeningHours.Close

	windows := make([]model.Window, len(held))
	for i, booking := range held {
		windows[i] = model.Window{Start: booking.StartTime, End: booking.EndTime}
	}

	return dto.AvailabilityResponse{
		Room:     room.String(),
		Date:     date,
		Open:     open,
		Close:    closing,
		Bookings: bookingDto.FromModels(held),
		Free:     dto.FromWindows(freeWindows(open, closing, windows)),
	}, nil
}

// freeWindows returns the gaps inside [open, closing) left by held, which must be sorted by start.
func freeWindows(open, closing string, held []model.Window) []model.Window {
	free := make([]model.Window, 0, len(held)+1)
	cursor := open

	for _, window := range held {
		if cursor >= closing {
			break
		}

		if window.Start > cursor {
			free = append(free, model.Window{Start: cursor, End: min(window.Start, closing)})
		}

		cursor = max(cursor, window.End)
	}

	if cursor < closing {
		free = append(free, model.Window{Start: cursor, End: closing})
	}

	return free
}
