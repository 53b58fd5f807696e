package booking

import (
	"net/http"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/service"
	"roombook/shared/constant"
	"roombook/shared/validator"
	"roombook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/statistics", handler.GetStatistics)
		routerGroup.Get("/backups", handler.GetBackups)
		routerGroup.Post("/backups", handler.CreateBackup)
		routerGroup.Post("/backups/restore", handler.RestoreBackup)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a booking or a recurring series.
// @Summary Create a booking
// @Description Create one booking, or every non-conflicting occurrence of a recurring series.
// @Description A single booking is returned as an object, a series as an array.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created"
// @Failure 400 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking created")

	if res.Series {
		response.WithJSON(writer, http.StatusCreated, res.Bookings)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res.Bookings[0])
}

// GetBookings lists bookings.
// @Summary List bookings
// @Description Without query parameters the whole collection is returned as an array.
// @Description With any filter, sort or paging parameter the result is wrapped in a paging envelope.
// @Tags Booking
// @Produce json
// @Param startDate query string false "Earliest date (YYYY-MM-DD)"
// @Param endDate query string false "Latest date (YYYY-MM-DD)"
// @Param className query string false "Room name"
// @Param groupName query string false "Group or purpose contains"
// @Param bookedBy query string false "Booked by contains"
// @Param status query string false "confirmed, pending or cancelled"
// @Param sortBy query string false "date, createdAt, className or roomName"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page, requires limit"
// @Param limit query int false "Page size, requires page"
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	req := dto.ListBookingsRequest{}

	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid list parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	if res.Envelope != nil {
		response.WithJSON(writer, http.StatusOK, res.Envelope)

		return
	}

	response.WithJSON(writer, http.StatusOK, res.Bookings)
}

// GetBookingByID retrieves a booking by its identifier.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBooking replaces the editable fields of a booking.
// @Summary Update a booking
// @Description Omitted purpose, description, attendees and status keep their stored values.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/{id} [put]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking removes a booking.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Success
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer)
}

// GetStatistics summarizes the collection.
// @Summary Booking statistics
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} response.Message
// @Router /v1/bookings/statistics [get]
func (handler *Handler) GetStatistics(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	res, err := handler.service.Statistics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute statistics")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBackup stores a snapshot of the collection in object storage.
// @Summary Back up bookings
// @Tags Backup
// @Produce json
// @Success 201 {object} dto.BackupResponse
// @Failure 500 {object} response.Message
// @Failure 501 {object} response.Message
// @Router /v1/bookings/backups [post]
func (handler *Handler) CreateBackup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBackup")
	defer scope.End()

	res, err := handler.service.Backup(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to back up bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBackups lists stored snapshots.
// @Summary List backups
// @Tags Backup
// @Produce json
// @Success 200 {array} dto.BackupItem
// @Failure 500 {object} response.Message
// @Failure 501 {object} response.Message
// @Router /v1/bookings/backups [get]
func (handler *Handler) GetBackups(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBackups")
	defer scope.End()

	res, err := handler.service.ListBackups(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list backups")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RestoreBackup replaces the collection with a stored snapshot.
// @Summary Restore a backup
// @Description The backup is rejected when it holds overlapping bookings.
// @Tags Backup
// @Accept json
// @Produce json
// @Param request body dto.RestoreBackupRequest true "Backup key"
// @Success 200 {object} dto.RestoreBackupResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Failure 501 {object} response.Message
// @Router /v1/bookings/backups/restore [post]
func (handler *Handler) RestoreBackup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RestoreBackup")
	defer scope.End()

	req := dto.RestoreBackupRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Restore(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", req.Key).Msg("failed to restore backup")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
