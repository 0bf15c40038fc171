package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/realty-crm/db"
)

var (
	testDB      *gorm.DB
	testDSN     string
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			terminateContainer(ctx)
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	if err := initializeTestDatabase(ctx, dsn); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	testDSN = dsn
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

// initializeTestDatabase applies the embedded migrations and the seed users
func initializeTestDatabase(ctx context.Context, dsn string) error {
	sqlDB, err := db.Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	if err := db.Up(ctx, sqlDB); err != nil {
		return err
	}

	seedPath := filepath.Join("..", "..", "db", "pg_test_data.sql")
	seedSQL, err := os.ReadFile(seedPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	if _, err := sqlDB.ExecContext(ctx, string(seedSQL)); err != nil {
		return fmt.Errorf("failed to execute seed data: %w", err)
	}

	return nil
}

// initPGTestDB starts a transaction per test so every test sees only the seed data
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// cleanupPGTestDB is a no-op, the t.Cleanup rollback restores state
func cleanupPGTestDB(t *testing.T) {}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	RunStoreTests(t, initPGTestDB, cleanupPGTestDB)
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("reachable database", func(t *testing.T) {
		db, err := Connect(ctx, testDSN, 5*time.Second)
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	t.Run("single attempt without timeout", func(t *testing.T) {
		_, err := Connect(ctx, "host=127.0.0.1 port=1 user=postgres dbname=none sslmode=disable connect_timeout=1", 0)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to connect to database")
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Connect(canceled, "host=127.0.0.1 port=1 user=postgres dbname=none sslmode=disable connect_timeout=1", time.Minute)
		require.Error(t, err)
	})
}

func TestMigrationStatus(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := db.Open(testDSN)
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	statuses, err := db.Status(ctx, sqlDB)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	require.Equal(t, int64(1), statuses[0].Version)
	for _, status := range statuses {
		require.True(t, status.Applied, "migration %d is pending", status.Version)
		require.False(t, status.AppliedAt.IsZero())
	}

	version, err := db.Version(ctx, sqlDB)
	require.NoError(t, err)
	require.Equal(t, statuses[len(statuses)-1].Version, version)
}
