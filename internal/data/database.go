package data

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"go-cms-app/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

//go:embed migrations/sqlite3/*.sql migrations/mysql/*.sql
var migrationsFS embed.FS

// NewDB creates a new database connection pool for the configured driver.
func NewDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := cfg.DSN
	switch cfg.Driver {
	case DriverSQLite:
	case DriverMySQL:
		// Timestamps must scan into time.Time, and RowsAffected must count
		// matched rows so an update with unchanged values is not a miss.
		mcfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mysql dsn: %w", err)
		}
		mcfg.ParseTime = true
		mcfg.ClientFoundRows = true
		dsn = mcfg.FormatDSN()
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	// sqlx.Connect opens a connection and pings it to verify it's alive.
	db, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// SQLite serializes writers; one connection also keeps in-memory databases whole.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrator applies the embedded schema migrations for one driver.
type Migrator struct {
	db     *sqlx.DB
	driver string
	dsn    string
}

// NewMigrator creates a Migrator bound to an open pool.
func NewMigrator(db *sqlx.DB, cfg config.DBConfig) *Migrator {
	return &Migrator{db: db, driver: cfg.Driver, dsn: cfg.DSN}
}

// Up runs all up migrations. It is a no-op when the schema is current.
func (m *Migrator) Up() error {
	srcDriver, err := iofs.New(migrationsFS, "migrations/"+m.driver)
	if err != nil {
		return fmt.Errorf("failed to init migration source: %w", err)
	}

	var dbDriver database.Driver
	switch m.driver {
	case DriverSQLite:
		// Shares the pool. The migrate instance is never closed because that
		// would close the pool with it.
		dbDriver, err = migratesqlite.WithInstance(m.db.DB, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("failed to init sqlite migration driver: %w", err)
		}
	case DriverMySQL:
		mcfg, err := mysql.ParseDSN(m.dsn)
		if err != nil {
			return fmt.Errorf("failed to parse mysql dsn: %w", err)
		}
		mcfg.MultiStatements = true
		sqlDB, err := sql.Open(DriverMySQL, mcfg.FormatDSN())
		if err != nil {
			return fmt.Errorf("failed to open migration connection: %w", err)
		}
		dbDriver, err = migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
		if err != nil {
			sqlDB.Close()
			return fmt.Errorf("failed to init mysql migration driver: %w", err)
		}
		defer dbDriver.Close()
	default:
		return fmt.Errorf("unsupported database driver %q", m.driver)
	}

	mg, err := migrate.NewWithInstance("iofs", srcDriver, m.driver, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
