package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
)

// Pay debits the tariff of the service and records a PAYMENT transaction.
// The balance is never allowed to go negative.
func (l *LedgerUseCase) Pay(ctx context.Context, userID uint64, serviceCode string) (*entity.Receipt, error) {
	service, err := l.serviceRepo.GetByCode(ctx, serviceCode)
	if err != nil {
		l.recordFailure(operationPayment, userID, err)
		return nil, err
	}
	if !service.Payable() {
		err = fmt.Errorf("%w: %s has no payable tariff", errs.ErrServiceNotFound, service.Code)
		l.recordFailure(operationPayment, userID, err)
		return nil, err
	}

	balance, record, err := l.lockedMutation(ctx, userID,
		func(balance *entity.Balance) error {
			return balance.Debit(service.Tariff, l.timeProvider)
		},
		func(invoiceNumber string) (*entity.Transaction, error) {
			return entity.NewPaymentTransaction(userID, invoiceNumber, service, l.timeProvider.Now())
		},
	)
	if err != nil {
		l.recordFailure(operationPayment, userID, err)
		return nil, err
	}

	l.metrics.PaymentCompleted(service.Code, service.Tariff)
	l.logger.Info("Service paid", map[string]any{
		"userId":        userID,
		"serviceCode":   service.Code,
		"amount":        service.Tariff,
		"newBalance":    balance.Amount(),
		"invoiceNumber": record.InvoiceNumber,
	})

	receipt := record.Receipt(service.Name)
	return &receipt, nil
}
