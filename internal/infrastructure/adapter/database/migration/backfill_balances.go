package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BackfillBalances gives every user without a balance row a zero balance
type BackfillBalances struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillBalances creates a new migration instance
func NewBackfillBalances(db *gorm.DB, logger coreport.Logger) *BackfillBalances {
	return &BackfillBalances{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration. Running it twice is harmless.
func (m *BackfillBalances) Run(ctx context.Context) error {
	m.logger.Info("Backfilling missing balance rows", nil)

	if !m.db.Migrator().HasTable(&model.Balance{}) {
		if err := m.db.WithContext(ctx).AutoMigrate(&model.Balance{}); err != nil {
			m.logger.Error("Failed to create balances table", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := m.db.WithContext(ctx).Exec(`
		INSERT INTO balances (user_id, balance, updated_at)
		SELECT u.id, 0, CURRENT_TIMESTAMP
		FROM users u
		LEFT JOIN balances b ON b.user_id = u.id
		WHERE b.user_id IS NULL
	`)
	if result.Error != nil {
		m.logger.Error("Failed to backfill balances", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Backfilled balance rows", map[string]any{"rows": result.RowsAffected})
	return nil
}
