package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated in-memory SQLite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a manager for a private in-memory database named after the test.
// A single connection serializes every statement, so SQLite never reports a busy database.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	config := &Config{
		Driver:          DriverSQLite,
		Database:        fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano()),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		QueryTimeout:    5 * time.Second,
		ConnectAttempts: 1,
		LogLevel:        "silent",
	}

	timeProvider := timeprovider.NewRealTimeProvider()
	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects and migrates the test database and closes it when the test ends
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })

	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SeedCatalog inserts the default banners and services
func (m *TestDBManager) SeedCatalog(t *testing.T) {
	t.Helper()

	if err := m.Manager.MigrationManager().SeedCatalog(context.Background()); err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}
}
