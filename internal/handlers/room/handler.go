package room

import (
	"net/http"
	"net/url"
	"roombook/infras/otel"
	"roombook/internal/domains/room/service"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{name}/availability", handler.GetAvailability)
	})
}

// GetRooms lists the room catalogue.
// @Summary List rooms
// @Description Every bookable room with the number of bookings it holds today.
// @Tags Room
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} response.Message
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAvailability shows one room's day.
// @Summary Room availability
// @Description Bookings held by the room on the date and the free windows inside opening hours.
// @Tags Room
// @Produce json
// @Param name path string true "Room name"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/rooms/{name}/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	name, err := url.PathUnescape(chi.URLParam(request, constant.RequestParamName))
	if err != nil {
		response.WithError(writer, failure.NotFound(service.MessageNotFound))

		return
	}

	date := request.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.Availability(ctx, name, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", name).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
