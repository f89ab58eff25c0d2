package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates PostgreSQL-only indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		sql  string
	}{
		{
			// Payments per service for reporting
			name: "idx_transactions_payments_service",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_payments_service
				ON transactions (service_code, created_on)
				WHERE transaction_type = 'PAYMENT'`,
		},
		{
			// BRIN suits the append-only, time-ordered ledger
			name: "idx_transactions_created_on_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_on_brin
				ON transactions USING BRIN (created_on)
				WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_users_email_lower",
			sql:  `CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email))`,
		},
	}

	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Balance rows are updated in place on every top-up and payment
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE balances SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for balances table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
