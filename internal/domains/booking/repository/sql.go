package repository

import (
	"context"
	"fmt"
	"roombook/infras/database"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/model"
	"roombook/shared/constant"
	gRepo "roombook/shared/repository"
)

// row pins each booking to its position so reads return insertion order.
type row struct {
	model.Booking
	Seq int `db:"seq"`
}

type sqlRepository struct {
	gRepo.Repository[row]
	otel otel.Otel
}

// NewSQL stores the collection in the room_bookings table of a postgres or sqlite database.
func NewSQL(db *database.Connection, otel otel.Otel) Booking {
	return &sqlRepository{
		Repository: gRepo.NewRepository[row](model.EntityName, model.TableName, model.FieldSeq, db, otel),
		otel:       otel,
	}
}

func (repo *sqlRepository) ReadAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sql.ReadAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	bookings = make([]model.Booking, len(rows))
	for i, r := range rows {
		bookings[i] = r.Booking
	}

	return bookings, nil
}

func (repo *sqlRepository) WriteAll(ctx context.Context, bookings []model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sql.WriteAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows := make([]row, len(bookings))
	for i, booking := range bookings {
		rows[i] = row{Booking: booking, Seq: i}
	}

	if err = repo.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("failed to write bookings: %w", err)
	}

	return nil
}
