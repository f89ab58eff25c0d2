package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/invoice"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"postgres discrete fields", Config{Driver: DriverPostgres, Host: "db", Database: "sims"}, false},
		{"postgres url", Config{Driver: DriverPostgres, URL: "postgres://u:p@db/sims"}, false},
		{"postgres without host", Config{Driver: DriverPostgres, Database: "sims"}, true},
		{"sqlite path", Config{Driver: DriverSQLite, Database: "sims.db"}, false},
		{"sqlite without path", Config{Driver: DriverSQLite}, true},
		{"unknown driver", Config{Driver: "mysql", Host: "db", Database: "sims"}, true},
		{"idle above open", Config{Driver: DriverSQLite, Database: "x", MaxOpenConns: 1, MaxIdleConns: 2}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigDSN(t *testing.T) {
	t.Run("URL wins for postgres", func(t *testing.T) {
		c := Config{Driver: DriverPostgres, URL: "postgres://u:p@db/sims", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@db/sims", c.DSN())
	})

	t.Run("Discrete postgres fields", func(t *testing.T) {
		c := Config{Driver: DriverPostgres, Host: "db", Port: "5432", Username: "u", Password: "p", Database: "sims"}
		assert.Equal(t, "host=db port=5432 user=u password=p dbname=sims sslmode=disable TimeZone=UTC", c.DSN())
	})

	t.Run("SQLite gets a busy timeout", func(t *testing.T) {
		assert.Equal(t, "sims.db?_busy_timeout=5000", (&Config{Driver: DriverSQLite, Database: "sims.db"}).DSN())
		assert.Equal(t, "file:x?mode=memory&_busy_timeout=5000", (&Config{Driver: DriverSQLite, Database: "file:x?mode=memory"}).DSN())
	})

	t.Run("Built from application config", func(t *testing.T) {
		c := NewConfig(config.DatabaseConfig{Driver: " Postgres ", URL: "postgres://x"}, "debug")
		assert.Equal(t, DriverPostgres, c.Driver)
		assert.Equal(t, "info", c.LogLevel)
		assert.Equal(t, map[string]any{"driver": DriverPostgres, "source": "url"}, c.Target())
	})
}

func TestManagerConnectAndMigrate(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	ctx := context.Background()

	require.NoError(t, testDB.Manager.Ping(ctx))

	migrations := testDB.Manager.MigrationManager()
	version, err := migrations.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	// A second run finds the schema current
	require.NoError(t, migrations.MigrateAll(ctx))
	var versions int64
	require.NoError(t, testDB.Manager.DB().Model(&model.MigrationVersion{}).Count(&versions).Error)
	assert.Equal(t, int64(1), versions)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)

	testDB.SeedCatalog(t)
	testDB.SeedCatalog(t)

	db := testDB.Manager.DB()
	var banners, services int64
	require.NoError(t, db.Model(&model.Banner{}).Count(&banners).Error)
	require.NoError(t, db.Model(&model.Service{}).Count(&services).Error)
	assert.Equal(t, int64(6), banners)
	assert.Equal(t, int64(12), services)

	serviceRepo := repository.NewServiceRepository(db, testDB.Logger)
	list, err := serviceRepo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PAJAK", list[0].Code)
	assert.Equal(t, "ZAKAT", list[11].Code)
}

func TestConnectRejectsInvalidConfig(t *testing.T) {
	manager := NewManager(&Config{Driver: "oracle"}, logger.NewNoopLogger(), nil)

	_, err := manager.Connect(context.Background())
	assert.Error(t, err)
	assert.ErrorIs(t, manager.Ping(context.Background()), ErrNotConnected)
	assert.ErrorIs(t, manager.StartPoolMonitor(nil), ErrNotConnected)
}

func createUser(t *testing.T, testDB *TestDBManager, email string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(email, "Test", "User", "hash", testDB.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(testDB.Manager.DB(), testDB.Logger).Create(context.Background(), user))
	return user
}

func TestUnitOfWork(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	uow := testDB.Manager.CreateUnitOfWork()
	ctx := context.Background()

	t.Run("Commit persists both writes", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		user, err := entity.NewUser("commit@x.com", "A", "B", "hash", testDB.TimeProvider)
		require.NoError(t, err)
		require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, user))
		balance, err := entity.NewBalance(user.ID, 0)
		require.NoError(t, err)
		require.NoError(t, uow.GetBalanceRepository(txCtx).Create(txCtx, balance))
		require.NoError(t, uow.Commit(txCtx))

		// Rolling back a finished transaction is tolerated
		assert.NoError(t, uow.Rollback(txCtx))

		exists, err := repository.NewUserRepository(testDB.Manager.DB(), testDB.Logger).EmailExists(ctx, "commit@x.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Rollback discards the writes", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		user, err := entity.NewUser("rollback@x.com", "A", "B", "hash", testDB.TimeProvider)
		require.NoError(t, err)
		require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, user))
		require.NoError(t, uow.Rollback(txCtx))

		exists, err := repository.NewUserRepository(testDB.Manager.DB(), testDB.Logger).EmailExists(ctx, "rollback@x.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Commit without a transaction", func(t *testing.T) {
		assert.ErrorIs(t, uow.Commit(ctx), ErrNoTransaction)
		assert.ErrorIs(t, uow.Rollback(ctx), ErrNoTransaction)
	})
}

func newLedger(testDB *TestDBManager) *ledger.LedgerUseCase {
	db := testDB.Manager.DB()
	return ledger.NewLedgerUseCase(
		testDB.Manager.CreateUnitOfWork(),
		repository.NewBalanceRepository(db, testDB.TimeProvider, testDB.Logger),
		repository.NewServiceRepository(db, testDB.Logger),
		repository.NewTransactionRepository(db, testDB.Logger),
		invoice.NewUUIDGenerator(),
		metrics.NewRegistry(),
		testDB.TimeProvider,
		testDB.Logger,
	)
}

func TestConcurrentTopUpsLoseNoUpdates(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	user := createUser(t, testDB, "concurrent@x.com")
	ledgerUseCase := newLedger(testDB)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledgerUseCase.TopUp(ctx, user.ID, 1000); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("top up failed: %v", err)
	}

	balance, err := ledgerUseCase.GetBalance(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*1000), balance)

	page, err := ledgerUseCase.History(ctx, user.ID, 0, nil)
	require.NoError(t, err)
	assert.Len(t, page.Records, workers)
}

func TestConcurrentPaymentsNeverOverdraw(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	testDB.SeedCatalog(t)
	user := createUser(t, testDB, "payer@x.com")
	ledgerUseCase := newLedger(testDB)
	ctx := context.Background()

	_, err := ledgerUseCase.TopUp(ctx, user.ID, 50000)
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	paid, rejected := 0, 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledgerUseCase.Pay(ctx, user.ID, "PLN")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				paid++
			case errors.Is(err, errs.ErrInsufficientBalance):
				rejected++
			default:
				t.Errorf("unexpected payment error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, paid)
	assert.Equal(t, 5, rejected)

	balance, err := ledgerUseCase.GetBalance(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	page, err := ledgerUseCase.History(ctx, user.ID, 0, nil)
	require.NoError(t, err)
	assert.Len(t, page.Records, 1+paid)
}

func TestBackfillBalances(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	first := createUser(t, testDB, "first@x.com")
	second := createUser(t, testDB, "second@x.com")
	db := testDB.Manager.DB()

	// Only the first user got a balance row at registration
	require.NoError(t, db.Create(&model.Balance{UserID: first.ID, Balance: 700, UpdatedAt: time.Now()}).Error)

	backfill := migration.NewBackfillBalances(db, testDB.Logger)
	require.NoError(t, backfill.Run(context.Background()))
	require.NoError(t, backfill.Run(context.Background()))

	var rows []model.Balance
	require.NoError(t, db.Order("user_id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].UserID)
	assert.Equal(t, int64(700), rows[0].Balance)
	assert.Equal(t, second.ID, rows[1].UserID)
	assert.Equal(t, int64(0), rows[1].Balance)
}

func TestRetry(t *testing.T) {
	noop := logger.NewNoopLogger()
	config := RetryConfig{MaxAttempts: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}

	t.Run("Succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), config, func() error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}, noop)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Returns the last error", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), config, func() error {
			calls++
			return errors.New("dial tcp: refused")
		}, noop)

		assert.EqualError(t, err, "dial tcp: refused")
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := RetryConfig{MaxAttempts: 5, RetryInterval: time.Hour}

		err := retry(ctx, slow, func() error { return errors.New("down") }, noop)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Backoff doubles up to the cap", func(t *testing.T) {
		c := RetryConfig{RetryInterval: time.Second, MaxInterval: 5 * time.Second}
		assert.Equal(t, time.Second, calculateBackoff(0, c))
		assert.Equal(t, 4*time.Second, calculateBackoff(2, c))
		assert.Equal(t, 5*time.Second, calculateBackoff(3, c))
	})
}

type poolRecorder struct {
	mu      sync.Mutex
	samples []sql.DBStats
}

func (r *poolRecorder) ObservePool(stats sql.DBStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, stats)
}

func TestConnectionPoolMonitor(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(7)

	recorder := &poolRecorder{}
	monitor := NewConnectionPoolMonitor(db, recorder, logger.NewNoopLogger())

	assert.Error(t, monitor.Start(0))

	require.NoError(t, monitor.Start(time.Hour))
	defer monitor.Stop()

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	require.Len(t, recorder.samples, 1)
	assert.Equal(t, 7, recorder.samples[0].MaxOpenConnections)
	assert.Equal(t, 7, monitor.Stats().MaxOpenConnections)
}

func TestQueryTimeoutBoundsStatements(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	db := testDB.Manager.DB()

	var deadline time.Time
	var hasDeadline bool
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:capture_deadline", func(tx *gorm.DB) {
		deadline, hasDeadline = tx.Statement.Context.Deadline()
	}))

	t.Run("should bound a query without a deadline", func(t *testing.T) {
		// Act
		start := time.Now()
		var services []model.Service
		require.NoError(t, db.WithContext(context.Background()).Find(&services).Error)

		// Assert
		require.True(t, hasDeadline)
		assert.WithinDuration(t, start.Add(testDB.Config.QueryTimeout), deadline, time.Second)
	})

	t.Run("should keep an earlier caller deadline", func(t *testing.T) {
		// Arrange
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		expected, _ := ctx.Deadline()

		// Act
		var services []model.Service
		require.NoError(t, db.WithContext(ctx).Find(&services).Error)

		// Assert
		require.True(t, hasDeadline)
		assert.Equal(t, expected, deadline)
	})

	t.Run("should leave the caller context usable afterwards", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		// Act
		var count int64
		err := db.WithContext(ctx).Model(&model.Service{}).Count(&count).Error

		// Assert
		require.NoError(t, err)
		assert.NoError(t, ctx.Err())
	})
}
