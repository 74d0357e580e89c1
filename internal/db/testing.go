package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func applyMigrations(connString string) {
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		panic("TEST_MIGRATIONS_PATH must be set.")
	}
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		panic("Could not connect to DB for applying migrations.")
	}
	err = m.Up()
	if !errors.Is(err, migrate.ErrNoChange) && err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}
}

// SkipWithoutTestDB skips DB-backed tests when no test database is configured.
func SkipWithoutTestDB(t *testing.T) {
	if os.Getenv("TEST_POSTGRESQL_URL") == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
}

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	applyMigrations(connString)

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		panic("Could not connect to the database.")
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE notifications, reminders, events, profiles CASCADE")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}

// CreateTestEvent inserts an event row owned by another part of the system.
func CreateTestEvent(pool *pgxpool.Pool, id string, title string) {
	_, err := pool.Exec(
		context.Background(),
		"INSERT INTO events (id, title, start_time) VALUES ($1, $2, now() + interval '1 day')",
		id,
		title,
	)
	if err != nil {
		panic(fmt.Sprintf("Could not create test event %v.", err))
	}
}

// CreateTestProfile inserts a profile row owned by another part of the system.
func CreateTestProfile(pool *pgxpool.Pool, id string, email string) {
	_, err := pool.Exec(context.Background(), "INSERT INTO profiles (id, email) VALUES ($1, $2)", id, email)
	if err != nil {
		panic(fmt.Sprintf("Could not create test profile %v.", err))
	}
}
