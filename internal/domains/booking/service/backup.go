package service

import (
	"context"
	"encoding/json"
	"fmt"
	"roombook/internal/domains/booking/conflict"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	backupPrefix    = "bookings-"
	backupExtension = ".json"

	MessageBackupDisabled = "backup storage is not configured"
	MessageBackupKey      = "key must name a backup file"
	MessageBackupInvalid  = "backup is not a valid booking collection"
	MessageBackupOverlap  = "backup contains overlapping bookings"
)

func (s *serviceImpl) Backup(ctx context.Context) (res dto.BackupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Backup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.s3.Enabled() {
		return res, failure.Unimplemented(MessageBackupDisabled) // nolint:wrapcheck
	}

	bookings, err := s.repo.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return res, fmt.Errorf("failed to read bookings: %w", err)
	}

	raw, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return res, fmt.Errorf("failed to encode backup: %w", err)
	}

	now := s.now()
	key := backupPrefix + now.UTC().Format(constant.BackupFormat) + backupExtension

	if _, err = s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BackupDirectory, key, constant.ContentTypeJSON, raw); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload backup")

		return res, fmt.Errorf("failed to upload backup: %w", err)
	}

	log.Info().Str("key", key).Int("count", len(bookings)).Msg("bookings backed up")

	return dto.BackupResponse{
		Key:       key,
		Count:     len(bookings),
		CreatedAt: now.Format(constant.DateFormat),
	}, nil
}

func (s *serviceImpl) ListBackups(ctx context.Context) (res []dto.BackupItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBackups")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.s3.Enabled() {
		return nil, failure.Unimplemented(MessageBackupDisabled) // nolint:wrapcheck
	}

	objects, err := s.s3.ListFiles(ctx, s.cfg.External.S3.BackupDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	res = make([]dto.BackupItem, 0, len(objects))

	for _, object := range objects {
		if !isBackupKey(object.Name) {
			continue
		}

		res = append(res, dto.BackupItem{
			Key:          object.Name,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}

	return res, nil
}

// Restore replaces the collection with a stored backup after checking it holds no overlaps.
func (s *serviceImpl) Restore(ctx context.Context, req dto.RestoreBackupRequest) (res dto.RestoreBackupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Restore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.s3.Enabled() {
		return res, failure.Unimplemented(MessageBackupDisabled) // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if !isBackupKey(req.Key) {
		return res, failure.BadRequestFromString(MessageBackupKey) // nolint:wrapcheck
	}

	raw, err := s.s3.DownloadFile(ctx, s.cfg.External.S3.BackupDirectory, req.Key)
	if err != nil {
		return res, fmt.Errorf("failed to download backup: %w", err)
	}

	var bookings []model.Booking
	if err = json.Unmarshal(raw, &bookings); err != nil {
		log.Error().Err(err).Str("key", req.Key).Msg("failed to decode backup")

		return res, failure.BadRequestFromString(MessageBackupInvalid) // nolint:wrapcheck
	}

	if err = validateCollection(bookings); err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.persist(ctx, bookings); err != nil {
		return res, err
	}

	log.Info().Str("key", req.Key).Int("count", len(bookings)).Msg("bookings restored")

	return dto.RestoreBackupResponse{Key: req.Key, Count: len(bookings)}, nil
}

func isBackupKey(key string) bool {
	return strings.HasPrefix(key, backupPrefix) &&
		strings.HasSuffix(key, backupExtension) &&
		!strings.ContainsAny(key, `/\`) &&
		!strings.Contains(key, "..")
}

// validateCollection checks every record the way Create would and then the overlap invariant.
func validateCollection(bookings []model.Booking) error {
	seen := make(map[string]struct{}, len(bookings))

	for _, booking := range bookings {
		if _, ok := seen[booking.ID]; ok || booking.ID == "" {
			return failure.BadRequestFromString(MessageBackupInvalid) // nolint:wrapcheck
		}

		seen[booking.ID] = struct{}{}

		if err := validator.ValidateVar(booking.Date, "required,day"); err != nil {
			return failure.BadRequestFromString(MessageBackupInvalid) // nolint:wrapcheck
		}

		if err := validator.ValidateVar(booking.StartTime, "required,clock"); err != nil {
			return failure.BadRequestFromString(MessageBackupInvalid) // nolint:wrapcheck
		}

		if err := validator.ValidateVar(booking.EndTime, "required,clock"); err != nil {
			return failure.BadRequestFromString(MessageBackupInvalid) // nolint:wrapcheck
		}

		if booking.StartTime >= booking.EndTime || !booking.ClassName.IsValid() || !booking.Status.IsValid() {
			return failure.BadRequestFromString(MessageBackupInvalid) // nolint:wrapcheck
		}
	}

	if first, second, found := conflict.Validate(bookings); found {
		log.Warn().Str("first", first.ID).Str("second", second.ID).Msg("backup contains overlapping bookings")

		return failure.BadRequestFromString(MessageBackupOverlap) // nolint:wrapcheck
	}

	return nil
}
