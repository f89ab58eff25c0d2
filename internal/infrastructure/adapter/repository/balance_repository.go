package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements BalanceRepository interface using GORM
type BalanceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a balance model to an entity
func (r *BalanceRepository) modelToEntity(m *model.Balance) (*entity.Balance, error) {
	balance, err := entity.NewBalance(m.UserID, m.Balance)
	if err != nil {
		r.logger.Error("Stored balance is out of range", map[string]any{
			"user_id": m.UserID,
			"balance": m.Balance,
		})
		return nil, err
	}
	balance.UpdatedAt = m.UpdatedAt
	return balance, nil
}

// Create inserts a balance row
func (r *BalanceRepository) Create(ctx context.Context, balance *entity.Balance) error {
	updatedAt := balance.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.timeProvider.Now()
	}

	balanceModel := model.Balance{
		UserID:    balance.UserID,
		Balance:   balance.Amount(),
		UpdatedAt: updatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&balanceModel).Error; err != nil {
		return wrapDatabaseError(r.logger, r.errorClassifier, "creating balance", err, map[string]any{"user_id": balance.UserID})
	}
	return nil
}

// GetByUserID reads a balance without locking; a missing row reads as zero
func (r *BalanceRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Balance, error) {
	var balanceModel model.Balance
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&balanceModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.NewBalance(userID, 0)
	}
	if err != nil {
		return nil, wrapDatabaseError(r.logger, r.errorClassifier, "getting balance", err, map[string]any{"user_id": userID})
	}
	return r.modelToEntity(&balanceModel)
}

// GetForUpdate locks the user's balance row until the surrounding transaction ends.
// A missing row is created at zero and then locked.
func (r *BalanceRepository) GetForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error) {
	balanceModel, err := r.lockRow(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Balance row missing, creating it at zero", map[string]any{"user_id": userID})

		// Concurrent creators race on the primary key; the loser does nothing and locks the winner's row
		insert := r.db.WithContext(ctx).
			Omit(clause.Associations).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
			Create(&model.Balance{UserID: userID, Balance: 0, UpdatedAt: r.timeProvider.Now()})
		if insert.Error != nil {
			return nil, wrapDatabaseError(r.logger, r.errorClassifier, "creating balance", insert.Error, map[string]any{"user_id": userID})
		}
		balanceModel, err = r.lockRow(ctx, userID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: balance row for user %d could not be created", errs.ErrInternalServer, userID)
		}
		return nil, wrapDatabaseError(r.logger, r.errorClassifier, "locking balance", err, map[string]any{"user_id": userID})
	}

	return r.modelToEntity(balanceModel)
}

// lockRow reads the balance row with SELECT ... FOR UPDATE
func (r *BalanceRepository) lockRow(ctx context.Context, userID uint64) (*model.Balance, error) {
	var balanceModel model.Balance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&balanceModel).Error
	if err != nil {
		return nil, err
	}
	return &balanceModel, nil
}

// Save writes the amount back
func (r *BalanceRepository) Save(ctx context.Context, balance *entity.Balance) error {
	updatedAt := balance.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.timeProvider.Now()
	}

	result := r.db.WithContext(ctx).Model(&model.Balance{}).
		Where("user_id = ?", balance.UserID).
		Updates(map[string]interface{}{
			"balance":    balance.Amount(),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return wrapDatabaseError(r.logger, r.errorClassifier, "saving balance", result.Error, map[string]any{"user_id": balance.UserID})
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: balance row for user %d vanished", errs.ErrInternalServer, balance.UserID)
	}

	r.logger.Debug("Balance saved", map[string]any{
		"user_id": balance.UserID,
		"balance": balance.Amount(),
	})
	return nil
}
