package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateInstance 只取 migrate.Migrate 用到的方法，方便測試替換
type migrateInstance interface {
	Up() error
}

var (
	pgxpoolNew             = pgxpool.New
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// NewPgxPool 建立 pgx 連線池
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	return pool, nil
}

func newMigrator(dbURL string) (migrateInstance, func() error, error) {
	// 建立 *sql.DB 使用 pgx stdlib driver
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return nil, nil, err
	}

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations")
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return m, sqlDB.Close, nil
}

// RunMigrations 嵌入並執行 SQL migration (up all)
func RunMigrations(dbURL string) error {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return fmt.Errorf("RunMigrations: %w", err)
	}
	defer closeFn()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("RunMigrations: %w", err)
	}
	return nil
}
