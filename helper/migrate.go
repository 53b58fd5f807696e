package helper

//nolint:revive
import (
	"database/sql"
	"errors"
	"fmt"
	"roombook/config"
	"roombook/infras/database"
	"roombook/migrations"

	"github.com/golang-migrate/migrate/v4"
	migrateDatabase "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var errFileStorage = errors.New("file storage has no schema to migrate")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// getConnection opens a dedicated connection. Closing the migrate instance closes it.
func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	var (
		db      *sql.DB
		driver  migrateDatabase.Driver
		dialect string
		err     error
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		dialect = database.DriverPostgres

		db, err = sql.Open(database.DriverPostgres, database.PostgresDSN(
			cfg.DB.Postgres.Write.Username,
			cfg.DB.Postgres.Write.Password,
			cfg.DB.Postgres.Write.Host,
			cfg.DB.Postgres.Write.Port,
			getDBName(cfg, cfg.DB.Postgres.Write.Name),
			cfg.DB.Postgres.Write.SSLMode,
		))
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}

		driver, err = postgres.WithInstance(db, &postgres.Config{MigrationsTable: cfg.DB.Postgres.MigrationTable})
	case config.StorageDriverSqlite:
		dialect = database.DriverSqlite

		db, err = sql.Open(database.DriverSqlite, database.SqliteDSN(cfg.Storage.Sqlite.Path))
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}

		driver, err = sqlite.WithInstance(db, &sqlite.Config{MigrationsTable: cfg.DB.Postgres.MigrationTable})
	default:
		return nil, errFileStorage
	}

	if err != nil {
		db.Close()

		return nil, fmt.Errorf("error creating migrate driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, dialect)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	log.Info().Str("action", action).Str("driver", cfg.Storage.Driver).Msg("Database migrations completed successfully")

	return nil
}

// AutoMigrate applies pending migrations on boot when enabled. The file driver is skipped.
func AutoMigrate(cfg *config.Config) error {
	if !cfg.Storage.AutoMigrate || cfg.Storage.Driver == "" || cfg.Storage.Driver == config.StorageDriverFile {
		return nil
	}

	return Up(cfg)
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
