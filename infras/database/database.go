package database

//nolint:revive
import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"roombook/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"

	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

func init() {
	sqlx.BindDriver(DriverSqlite, sqlx.QUESTION)
}

// Connection holds the read and write pools. For sqlite both point to the same pool.
type Connection struct {
	Read   *sqlx.DB
	Write  *sqlx.DB
	Driver string
}

// Close releases the pools.
func (c *Connection) Close() error {
	if c == nil {
		return nil
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("failed to close write connection: %w", err)
		}
	}

	return nil
}

// New opens the connection for the configured storage driver. The file driver needs none and gets nil.
func New(cfg *config.Config) *Connection {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		return &Connection{
			Read:   CreatePostgresReadConn(*cfg),
			Write:  CreatePostgresWriteConn(*cfg),
			Driver: DriverPostgres,
		}
	case config.StorageDriverSqlite:
		db, err := CreateSqliteConnection(cfg.Storage.Sqlite.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.Sqlite.Path).Msg("Failed to open sqlite database")
		}

		return &Connection{Read: db, Write: db, Driver: DriverSqlite}
	default:
		return nil
	}
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		getDBName(config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// PostgresDSN builds the connection url used by both sqlx and migrate.
func PostgresDSN(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection connects with retries and fails hard when every attempt fails.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := PostgresDSN(username, password, host, port, dbName, sslMode)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(DriverPostgres, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Str("host", host).Msg("Could not connect to database")

	return nil
}

// CreateSqliteConnection opens an embedded database file, creating its directory.
// A single open connection serializes writers.
func CreateSqliteConnection(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sqlx.Connect(DriverSqlite, SqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to connect sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	log.Info().Str("path", path).Msg("Connected to sqlite database")

	return db, nil
}

// SqliteDSN enables foreign keys and a busy timeout on the file.
func SqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
}
