package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"roombook/infras/database"
	"roombook/infras/otel/mocks"
	"roombook/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Label struct {
	Name string `db:"name"`
}

type item struct {
	ID      string `db:"id"`
	Ignored string `db:"-"`
	Label
	Seq int `db:"seq"`
}

func newConnection(t *testing.T) *database.Connection {
	t.Helper()

	db, err := database.CreateSqliteConnection(filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("CREATE TABLE items (id TEXT PRIMARY KEY, name TEXT NOT NULL, seq INTEGER NOT NULL)")
	require.NoError(t, err)

	return &database.Connection{Read: db, Write: db, Driver: database.DriverSqlite}
}

func TestRepository_InsertColumns(t *testing.T) {
	repo := repository.NewRepository[item]("item", "items", "seq", newConnection(t), mocks.NewOtel())

	assert.Equal(t, []string{"id", "name", "seq"}, repo.InsertColumns)
}

func TestRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRepository[item]("item", "items", "seq", newConnection(t), mocks.NewOtel())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	first := make([]item, 0, 1200)
	for i := range 1200 {
		first = append(first, item{ID: fmt.Sprintf("id-%04d", i), Label: Label{Name: "first"}, Seq: 1200 - i})
	}

	require.NoError(t, repo.ReplaceAll(ctx, first))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1200)
	assert.Equal(t, "id-1199", all[0].ID, "rows come back ordered by seq")

	require.NoError(t, repo.ReplaceAll(ctx, []item{{ID: "only", Label: Label{Name: "second"}, Seq: 0}}))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "only", Label: Label{Name: "second"}, Seq: 0}}, all)

	require.NoError(t, repo.ReplaceAll(ctx, nil))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_ReplaceAllRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRepository[item]("item", "items", "seq", newConnection(t), mocks.NewOtel())

	require.NoError(t, repo.ReplaceAll(ctx, []item{{ID: "keep", Label: Label{Name: "kept"}, Seq: 0}}))

	duplicate := []item{
		{ID: "dup", Label: Label{Name: "a"}, Seq: 0},
		{ID: "dup", Label: Label{Name: "b"}, Seq: 1},
	}

	assert.Error(t, repo.ReplaceAll(ctx, duplicate))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "keep", Label: Label{Name: "kept"}, Seq: 0}}, all)
}
