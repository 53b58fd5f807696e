package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"roombook/config"
	"roombook/infras/database"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/model"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Booking persists the whole collection. WriteAll replaces it atomically:
// a reader sees either the previous or the new collection, never a mix.
type Booking interface {
	ReadAll(ctx context.Context) ([]model.Booking, error)
	WriteAll(ctx context.Context, bookings []model.Booking) error
}

// New picks the storage driver from config.
func New(cfg *config.Config, db *database.Connection, otel otel.Otel) (Booking, error) {
	switch cfg.Storage.Driver {
	case "", config.StorageDriverFile:
		return NewFile(cfg.Storage.File.Path, otel), nil
	case config.StorageDriverPostgres, config.StorageDriverSqlite:
		return NewSQL(db, otel), nil
	default:
		return nil, ErrUnknownDriver
	}
}
