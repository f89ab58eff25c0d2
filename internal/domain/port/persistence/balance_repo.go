package persistence

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// BalanceRepository stores the one balance row each user owns
type BalanceRepository interface {
	// Create inserts a balance row
	Create(ctx context.Context, balance *entity.Balance) error

	// GetByUserID reads a balance without locking. A user without a row owns a zero balance.
	GetByUserID(ctx context.Context, userID uint64) (*entity.Balance, error)

	// GetForUpdate locks the user's balance row until the surrounding transaction ends,
	// creating it at zero first when it is missing. It must run inside a UnitOfWork transaction.
	GetForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error)

	// Save writes the amount back
	Save(ctx context.Context, balance *entity.Balance) error
}
