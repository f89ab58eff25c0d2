package usecase

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// LedgerUseCase defines balance and transaction operations
type LedgerUseCase interface {
	// GetBalance returns the user's balance, zero when none is stored
	GetBalance(ctx context.Context, userID uint64) (int64, error)

	// TopUp credits amount and records a TOPUP transaction atomically.
	// Returns the new balance.
	TopUp(ctx context.Context, userID uint64, amount int64) (int64, error)

	// Pay debits the tariff of serviceCode and records a PAYMENT transaction atomically
	Pay(ctx context.Context, userID uint64, serviceCode string) (*entity.Receipt, error)

	// History returns a page of the user's records, most recent first
	History(ctx context.Context, userID uint64, offset int, limit *int) (*entity.HistoryPage, error)
}
