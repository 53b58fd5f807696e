package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roombook/config"
	"roombook/infras/kafka"
	"roombook/infras/otel"
	"roombook/infras/s3"
	"roombook/internal/domains/booking/conflict"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/query"
	"roombook/internal/domains/booking/recurrence"
	"roombook/internal/domains/booking/repository"
	"roombook/shared"
	"roombook/shared/cache"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/timezone"
	"roombook/shared/validator"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MessageNotFound     = "Booking not found"
	MessageConflict     = "This room is already booked during this time"
	MessageInvalidRange = "endTime must be after startTime"
)

var cacheAllBookings = shared.BuildCacheKey(model.EntityName, "all")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResult, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	List(ctx context.Context, req dto.ListBookingsRequest) (dto.ListBookingsResult, error)
	Statistics(ctx context.Context) (dto.StatisticsResponse, error)
	Backup(ctx context.Context) (dto.BackupResponse, error)
	ListBackups(ctx context.Context) ([]dto.BackupItem, error)
	Restore(ctx context.Context, req dto.RestoreBackupRequest) (dto.RestoreBackupResponse, error)
}

type serviceImpl struct {
	// mu serializes every read-check-write span and every cache fill.
	mu    sync.Mutex
	repo  repository.Booking
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
	s3    s3.S3
	kafka kafka.Client
	now   func() time.Time
}

func New(repo repository.Booking, cfg *config.Config, cache cache.Cache, otel otel.Otel, s3 s3.S3, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
		kafka: kafka,
		now:   timezone.Now,
	}
}

func validateRange(startTime, endTime string) error {
	if startTime >= endTime {
		return failure.BadRequestFromString(MessageInvalidRange) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validateRange(req.StartTime, req.EndTime); err != nil {
		return res, err
	}

	base := req.ToModel(s.now())

	if req.Recurring != nil {
		return s.createSeries(ctx, base, *req.Recurring)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return res, fmt.Errorf("failed to read bookings: %w", err)
	}

	if conflict.HasConflict(conflict.SlotOf(base), bookings, "") {
		log.Warn().Str("room", base.ClassName.String()).Str("date", base.Date).Msg("booking conflicts with an existing booking")

		return res, failure.Conflict(MessageConflict) // nolint:wrapcheck
	}

	if err = s.persist(ctx, append(bookings, base)); err != nil {
		return res, err
	}

	s.publish(ctx, eventCreated, base)

	scope.SetBookingID(base.ID)

	res.Bookings = dto.FromModels([]model.Booking{base})

	return res, nil
}

// createSeries persists every occurrence that does not collide and skips the rest.
func (s *serviceImpl) createSeries(ctx context.Context, base model.Booking, pattern model.RecurringPattern) (res dto.CreateBookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".createSeries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	occurrences, err := recurrence.Expand(base, pattern)
	if err != nil {
		return res, failure.BadRequestFromString(recurrence.ErrInvalidPattern.Error()) // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return res, fmt.Errorf("failed to read bookings: %w", err)
	}

	accepted := make([]model.Booking, 0, len(occurrences))

	for _, occurrence := range occurrences {
		if conflict.HasConflict(conflict.SlotOf(occurrence), bookings, "") {
			res.Skipped++

			continue
		}

		occurrence.ID = uuid.NewString()
		bookings = append(bookings, occurrence)
		accepted = append(accepted, occurrence)
	}

	scope.SetAttributes(map[string]any{
		otel.AttrSeriesAccepted: len(accepted),
		otel.AttrSeriesSkipped:  res.Skipped,
	})

	if len(accepted) == 0 {
		return res, failure.Conflict(MessageConflict) // nolint:wrapcheck
	}

	if res.Skipped > 0 {
		log.Info().Int("accepted", len(accepted)).Int("skipped", res.Skipped).Msg("skipped conflicting occurrences")
	}

	if err = s.persist(ctx, bookings); err != nil {
		return res, err
	}

	s.publish(ctx, eventCreated, accepted...)

	res.Series = true
	res.Bookings = dto.FromModels(accepted)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetBookingID(id)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validateRange(req.StartTime, req.EndTime); err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return res, fmt.Errorf("failed to read bookings: %w", err)
	}

	index := indexOf(bookings, id)
	if index < 0 {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	updated := req.Apply(bookings[index], s.now())

	if conflict.HasConflict(conflict.SlotOf(updated), bookings, id) {
		return res, failure.Conflict(MessageConflict) // nolint:wrapcheck
	}

	next := make([]model.Booking, len(bookings))
	copy(next, bookings)
	next[index] = updated

	if err = s.persist(ctx, next); err != nil {
		return res, err
	}

	s.publish(ctx, eventUpdated, updated)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetBookingID(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return fmt.Errorf("failed to read bookings: %w", err)
	}

	index := indexOf(bookings, id)
	if index < 0 {
		return failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	removed := bookings[index]

	next := make([]model.Booking, 0, len(bookings)-1)
	next = append(next, bookings[:index]...)
	next = append(next, bookings[index+1:]...)

	if err = s.persist(ctx, next); err != nil {
		return err
	}

	s.publish(ctx, eventDeleted, removed)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.snapshot(ctx)
	if err != nil {
		return res, err
	}

	index := indexOf(bookings, id)
	if index < 0 {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	res.FromModel(bookings[index])

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListBookingsRequest) (res dto.ListBookingsResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	spec := req.ToSpec()

	if err = spec.Validate(); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	bookings, err := s.snapshot(ctx)
	if err != nil {
		return res, err
	}

	if spec.IsEmpty() {
		res.Bookings = dto.FromModels(bookings)

		return res, nil
	}

	result, err := query.Run(bookings, spec)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	res.Envelope = &dto.ListBookingsResponse{}
	res.Envelope.FromResult(result, spec.Page, spec.Limit)

	return res, nil
}

func (s *serviceImpl) Statistics(ctx context.Context) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.snapshot(ctx)
	if err != nil {
		return res, err
	}

	return statistics(bookings, s.now().Format(constant.DayFormat)), nil
}

// snapshot returns the collection through the read-through cache.
func (s *serviceImpl) snapshot(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking

	err := s.cache.Get(ctx, cacheAllBookings, &bookings)
	if err == nil && bookings != nil {
		return bookings, nil
	}

	if err != nil && !cache.IsMiss(err) {
		log.Warn().Err(err).Str("key", cacheAllBookings).Msg("cache unavailable, reading storage")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err = s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	if err = s.cache.Save(ctx, cacheAllBookings, bookings, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheAllBookings).Msg("failed to save bookings to cache")
	}

	return bookings, nil
}

// persist writes the collection and drops the cached copy. Callers hold mu.
func (s *serviceImpl) persist(ctx context.Context, bookings []model.Booking) error {
	if err := s.repo.WriteAll(ctx, bookings); err != nil {
		log.Error().Err(err).Msg("failed to write bookings")

		return fmt.Errorf("failed to write bookings: %w", err)
	}

	if err := shared.InvalidateCaches(ctx, s.cache, cacheAllBookings); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate bookings cache")
	}

	return nil
}

func indexOf(bookings []model.Booking, id string) int {
	for i, booking := range bookings {
		if booking.ID == id {
			return i
		}
	}

	return -1
}
