package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"roombook/infras/database"
	"roombook/infras/otel"
	"roombook/shared/constant"
	"roombook/shared/logger"
	"strings"

	"github.com/jmoiron/sqlx"
)

const defaultChunkSize = 500

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository is a generic whole-table store over sqlx. Rows keep the order given by orderColumn.
type Repository[T any] struct {
	db            *database.Connection
	otel          otel.Otel
	table         string
	entitas       string
	orderColumn   string
	chunkSize     int
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, orderColumn string, dbConnection *database.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		orderColumn:   orderColumn,
		chunkSize:     defaultChunkSize,
		InsertColumns: getColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scopeName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

// GetAll returns every row in order.
func (repo *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("GetAll"))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(repo.InsertColumns, ", "), repo.table, repo.orderColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	if err := repo.db.Read.SelectContext(ctx, &models, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

// ReplaceAll swaps the table contents for models in a single transaction.
func (repo *Repository[T]) ReplaceAll(ctx context.Context, models []T) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("ReplaceAll"))
	defer scope.End()

	scope.SetAttribute("rows", len(models))

	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", repo.entitas, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if err = repo.DeleteAllTx(ctx, sqltx); err != nil {
		return err
	}

	if err = repo.InsertBulkTx(ctx, sqltx, models); err != nil {
		return err
	}

	if err = sqltx.Commit(); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("DeleteAllTx"))
	defer scope.End()

	return repo.deleteAll(ctx, sqltx)
}

func (repo *Repository[T]) deleteAll(ctx context.Context, exec execer) error {
	query := "DELETE FROM " + repo.table

	if _, err := exec.ExecContext(ctx, query); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("InsertBulkTx"))
	defer scope.End()

	return repo.insertBulk(ctx, sqltx, models)
}

// insertBulk writes models in chunks to stay under driver parameter limits.
func (repo *Repository[T]) insertBulk(ctx context.Context, exec execer, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("insertBulk"))
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	placeholder := make([]string, 0, len(repo.InsertColumns))
	for _, column := range repo.InsertColumns {
		placeholder = append(placeholder, ":"+column)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholder, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	for start := 0; start < len(models); start += repo.chunkSize {
		end := min(start+repo.chunkSize, len(models))

		if _, err := exec.NamedExecContext(ctx, query, models[start:end]); err != nil {
			scope.TraceError(err)
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to bulk insert (%s): %w", repo.entitas, err)
		}
	}

	return nil
}

// getColumns collects db tags, descending into embedded structs.
func getColumns(reflectType reflect.Type) (columns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}
