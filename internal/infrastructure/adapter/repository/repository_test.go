package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB opens a private in-memory SQLite database with the schema applied
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_busy_timeout=5000", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Balance{}, &model.Banner{}, &model.Service{}, &model.Transaction{}))
	return db
}

// openMockDB opens a GORM PostgreSQL session backed by sqlmock
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func newTestUser(t *testing.T, email string) *entity.User {
	t.Helper()
	user, err := entity.NewUser(email, "Ada", "Lovelace", "hash", timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	return user
}

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	user := newTestUser(t, "ada@x.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	t.Run("Duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, newTestUser(t, "ada@x.com"))
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("Lookup by email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "ada@x.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "hash", found.PasswordHash)
		assert.Nil(t, found.ProfileImage)

		_, err = repo.GetByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Email exists", func(t *testing.T) {
		exists, err := repo.EmailExists(ctx, "ada@x.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.EmailExists(ctx, "ADA@x.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Update profile fields", func(t *testing.T) {
		url := "http://localhost:3000/uploads/ada.png"
		user.FirstName = "Grace"
		user.LastName = "Hopper"
		user.ProfileImage = &url
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.GetByEmail(ctx, "ada@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Grace", found.FirstName)
		assert.Equal(t, "Hopper", found.LastName)
		require.NotNil(t, found.ProfileImage)
		assert.Equal(t, url, *found.ProfileImage)
	})

	t.Run("Update of a missing user", func(t *testing.T) {
		ghost := newTestUser(t, "ghost@x.com")
		ghost.ID = 9999
		assert.ErrorIs(t, repo.Update(ctx, ghost), errs.ErrUserNotFound)
	})
}

func TestBalanceRepository(t *testing.T) {
	db := openTestDB(t)
	tp := timeprovider.NewRealTimeProvider()
	noop := logger.NewNoopLogger()
	ctx := context.Background()

	user := newTestUser(t, "bal@x.com")
	require.NoError(t, NewUserRepository(db, noop).Create(ctx, user))
	repo := NewBalanceRepository(db, tp, noop)

	t.Run("Missing row reads as zero", func(t *testing.T) {
		balance, err := repo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.Amount())
	})

	t.Run("Locking read creates the row", func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			txRepo := NewBalanceRepository(tx, tp, noop)
			balance, err := txRepo.GetForUpdate(ctx, user.ID)
			if err != nil {
				return err
			}
			if err := balance.Credit(25000, tp); err != nil {
				return err
			}
			return txRepo.Save(ctx, balance)
		})
		require.NoError(t, err)

		balance, err := repo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(25000), balance.Amount())

		var rows int64
		require.NoError(t, db.Model(&model.Balance{}).Count(&rows).Error)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("Locking read of an existing row", func(t *testing.T) {
		balance, err := repo.GetForUpdate(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(25000), balance.Amount())
	})

	t.Run("Save of a missing row", func(t *testing.T) {
		ghost, err := entity.NewBalance(4242, 10)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Save(ctx, ghost), errs.ErrInternalServer)
	})
}

func TestCatalogRepositories(t *testing.T) {
	db := openTestDB(t)
	noop := logger.NewNoopLogger()
	ctx := context.Background()

	require.NoError(t, db.Create(&[]model.Banner{
		{BannerName: "Banner 1", BannerImage: "https://img/1.jpg", Description: "one"},
		{BannerName: "Banner 2", BannerImage: "https://img/2.jpg", Description: "two"},
	}).Error)
	require.NoError(t, db.Create(&[]model.Service{
		{ServiceCode: "PLN", ServiceName: "Listrik", ServiceIcon: "https://img/pln.png", ServiceTariff: 10000},
		{ServiceCode: "PULSA", ServiceName: "Pulsa", ServiceIcon: "https://img/pulsa.png", ServiceTariff: 40000},
	}).Error)

	banners, err := NewBannerRepository(db, noop).List(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, "Banner 1", banners[0].Name)
	assert.Equal(t, "two", banners[1].Description)

	services := NewServiceRepository(db, noop)
	list, err := services.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "PLN", list[0].Code)

	pulsa, err := services.GetByCode(ctx, "PULSA")
	require.NoError(t, err)
	assert.Equal(t, int64(40000), pulsa.Tariff)
	assert.Equal(t, "Pulsa", pulsa.Name)

	_, err = services.GetByCode(ctx, "pulsa")
	assert.ErrorIs(t, err, errs.ErrServiceNotFound)
}

func TestTransactionRepository(t *testing.T) {
	db := openTestDB(t)
	noop := logger.NewNoopLogger()
	ctx := context.Background()

	user := newTestUser(t, "tx@x.com")
	require.NoError(t, NewUserRepository(db, noop).Create(ctx, user))
	other := newTestUser(t, "other@x.com")
	require.NoError(t, NewUserRepository(db, noop).Create(ctx, other))

	repo := NewTransactionRepository(db, noop)
	base := time.Date(2024, 2, 17, 10, 0, 0, 0, time.UTC)
	pln := &entity.Service{Code: "PLN", Name: "Listrik", Tariff: 10000}

	var invoices []string
	for i := 0; i < 4; i++ {
		invoiceNumber := fmt.Sprintf("INV17022024-%d", i)
		// The last two share a timestamp; id order decides
		at := base.Add(time.Duration(min(i, 2)) * time.Minute)
		var record *entity.Transaction
		var err error
		if i%2 == 0 {
			record, err = entity.NewTopUpTransaction(user.ID, invoiceNumber, int64(1000*(i+1)), at)
		} else {
			record, err = entity.NewPaymentTransaction(user.ID, invoiceNumber, pln, at)
		}
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, record))
		assert.NotZero(t, record.ID)
		invoices = append(invoices, invoiceNumber)
	}

	foreign, err := entity.NewTopUpTransaction(other.ID, "INV-OTHER", 5, base)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, foreign))

	t.Run("Duplicate invoice number", func(t *testing.T) {
		dup, err := entity.NewTopUpTransaction(user.ID, invoices[0], 1, base)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateInvoice)
	})

	t.Run("Newest first, id breaks ties", func(t *testing.T) {
		records, err := repo.ListByUser(ctx, user.ID, 0, nil)
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, []string{invoices[3], invoices[2], invoices[1], invoices[0]}, invoiceNumbers(records))

		payment := records[2]
		assert.Equal(t, entity.TransactionTypePayment, payment.Type)
		require.NotNil(t, payment.ServiceCode)
		assert.Equal(t, "PLN", *payment.ServiceCode)
		assert.Equal(t, "Listrik", payment.Description)
		assert.Nil(t, records[1].ServiceCode)
	})

	t.Run("Offset and limit", func(t *testing.T) {
		limit := 2
		records, err := repo.ListByUser(ctx, user.ID, 1, &limit)
		require.NoError(t, err)
		assert.Equal(t, []string{invoices[2], invoices[1]}, invoiceNumbers(records))
	})

	t.Run("Offset without limit returns the rest", func(t *testing.T) {
		records, err := repo.ListByUser(ctx, user.ID, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{invoices[0]}, invoiceNumbers(records))
	})

	t.Run("Offset past the end", func(t *testing.T) {
		records, err := repo.ListByUser(ctx, user.ID, 10, nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func invoiceNumbers(records []*entity.Transaction) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.InvoiceNumber)
	}
	return out
}

func TestRepositoriesWrapDriverFailures(t *testing.T) {
	db, mock := openMockDB(t)
	noop := logger.NewNoopLogger()
	ctx := context.Background()

	t.Run("Email lookup failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WillReturnError(errors.New("connection reset by peer"))

		_, err := NewUserRepository(db, noop).GetByEmail(ctx, "a@x.com")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	})

	t.Run("Unique violation reported by the server", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

		err := NewUserRepository(db, noop).Create(ctx, newTestUser(t, "a@x.com"))
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("History failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE user_id = $1 ORDER BY created_on DESC,id DESC`)).
			WillReturnError(errors.New("dial tcp 10.0.0.1:5432: i/o timeout"))

		_, err := NewTransactionRepository(db, noop).ListByUser(ctx, 1, 0, nil)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, NotFoundError, c.Classify(gorm.ErrRecordNotFound))
	assert.Equal(t, DuplicateKeyError, c.Classify(gorm.ErrDuplicatedKey))
	assert.Equal(t, DuplicateKeyError, c.Classify(errors.New("UNIQUE constraint failed: users.email")))
	assert.Equal(t, LockError, c.Classify(errors.New("ERROR: deadlock detected")))
	assert.Equal(t, ConnectionError, c.Classify(errors.New("connection refused")))
	assert.Equal(t, CanceledError, c.Classify(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	assert.Equal(t, ErrorType(""), c.Classify(errors.New("syntax error")))
	assert.Equal(t, ErrorType(""), c.Classify(nil))
}
