package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/model"
	"roombook/shared/constant"

	"github.com/rs/zerolog/log"
)

const filePermission = 0o644

type fileRepository struct {
	path string
	otel otel.Otel
}

// NewFile stores the collection as a JSON array in a single file.
func NewFile(path string, otel otel.Otel) Booking {
	return &fileRepository{
		path: path,
		otel: otel,
	}
}

// ReadAll treats a missing or blank file as an empty collection.
func (repo *fileRepository) ReadAll(ctx context.Context) (bookings []model.Booking, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.ReadAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := os.ReadFile(repo.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Booking{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("path", repo.path).Msg("failed to read bookings file")

		return nil, fmt.Errorf("failed to read bookings file: %w", err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []model.Booking{}, nil
	}

	if err = json.Unmarshal(raw, &bookings); err != nil {
		log.Error().Err(err).Str("path", repo.path).Msg("failed to decode bookings file")

		return nil, fmt.Errorf("failed to decode bookings file: %w", err)
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}

	return bookings, nil
}

// WriteAll writes to a temp file in the same directory, syncs it and renames it over the target.
func (repo *fileRepository) WriteAll(ctx context.Context, bookings []model.Booking) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.WriteAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("rows", len(bookings))

	if bookings == nil {
		bookings = []model.Booking{}
	}

	raw, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	dir := filepath.Dir(repo.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(repo.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Chmod(tmpPath, filePermission); err != nil {
		return fmt.Errorf("failed to set file permission: %w", err)
	}

	if err = os.Rename(tmpPath, repo.path); err != nil {
		log.Error().Err(err).Str("path", repo.path).Msg("failed to replace bookings file")

		return fmt.Errorf("failed to replace bookings file: %w", err)
	}

	return nil
}
