package persistence

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// TransactionRepository stores the immutable ledger records
type TransactionRepository interface {
	// Create appends a record and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateInvoice: if the invoice number is already used
	// - ErrDatabaseConnection: if the database fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns a user's records, most recent first.
	// A nil limit returns every record after offset.
	ListByUser(ctx context.Context, userID uint64, offset int, limit *int) ([]*entity.Transaction, error)
}
