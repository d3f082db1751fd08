package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"push-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the PostgreSQL test database and applies
// migrations. Tests are skipped when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	logger := observability.NewLogger()

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	store := Store{db: db, logger: logger}

	return &TestDB{
		db:     db,
		logger: logger,
		Store:  store,
	}
}

// setupPostgresDB creates a PostgreSQL database connection using the
// TEST_DB_* environment variables, falling back to the docker-compose
// defaults.
func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPass := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "push_user"
	}
	if dbPass == "" {
		dbPass = "push_password"
	}
	if dbName == "" {
		dbName = "push_db"
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

// runMigrations applies all migration files to the database
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}

	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}

	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		// Reverse dependency order.
		tables = []string{
			"campaign_executions",
			"campaigns",
			"segments",
			"subscriptions",
		}
	}

	for _, table := range tables {
		_, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			if !strings.Contains(err.Error(), "does not exist") {
				t.Fatalf("failed to truncate table %s: %v", table, err)
			}
		}
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() error {
	return tdb.db.Close()
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}
