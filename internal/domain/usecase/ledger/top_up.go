package ledger

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// TopUp credits amount to the user's balance and records a TOPUP transaction.
// Returns the new balance.
func (l *LedgerUseCase) TopUp(ctx context.Context, userID uint64, amount int64) (int64, error) {
	// Reject before opening a transaction; a bad amount never touches the row
	if err := entity.ValidateTopUpAmount(amount); err != nil {
		l.recordFailure(operationTopUp, userID, err)
		return 0, err
	}

	balance, record, err := l.lockedMutation(ctx, userID,
		func(balance *entity.Balance) error {
			return balance.Credit(amount, l.timeProvider)
		},
		func(invoiceNumber string) (*entity.Transaction, error) {
			return entity.NewTopUpTransaction(userID, invoiceNumber, amount, l.timeProvider.Now())
		},
	)
	if err != nil {
		l.recordFailure(operationTopUp, userID, err)
		return 0, err
	}

	l.metrics.TopUpCompleted(amount)
	l.logger.Info("Balance topped up", map[string]any{
		"userId":        userID,
		"amount":        amount,
		"newBalance":    balance.Amount(),
		"invoiceNumber": record.InvoiceNumber,
	})

	return balance.Amount(), nil
}
