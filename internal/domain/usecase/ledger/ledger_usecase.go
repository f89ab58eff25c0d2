package ledger

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/persistence"
)

// Operation names used in logs and metrics
const (
	operationTopUp   = "topup"
	operationPayment = "payment"
)

// LedgerUseCase owns every balance mutation.
// Top-ups and payments lock the user's balance row, mutate it and append the
// transaction record inside one database transaction, so concurrent requests
// for the same user are serialized and either both writes commit or neither does.
type LedgerUseCase struct {
	uow             persistence.UnitOfWork
	balanceRepo     persistence.BalanceRepository
	serviceRepo     persistence.ServiceRepository
	transactionRepo persistence.TransactionRepository
	invoices        coreport.InvoiceGenerator
	metrics         coreport.LedgerMetrics
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	uow persistence.UnitOfWork,
	balanceRepo persistence.BalanceRepository,
	serviceRepo persistence.ServiceRepository,
	transactionRepo persistence.TransactionRepository,
	invoices coreport.InvoiceGenerator,
	metrics coreport.LedgerMetrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		uow:             uow,
		balanceRepo:     balanceRepo,
		serviceRepo:     serviceRepo,
		transactionRepo: transactionRepo,
		invoices:        invoices,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetBalance returns the user's balance, zero when no row is stored
func (l *LedgerUseCase) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	balance, err := l.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return balance.Amount(), nil
}

// History returns a page of the user's records, most recent first
func (l *LedgerUseCase) History(ctx context.Context, userID uint64, offset int, limit *int) (*entity.HistoryPage, error) {
	if offset < 0 {
		return nil, errs.NewValidationError("offset", "Offset harus angka >= 0")
	}
	if limit != nil && *limit < 1 {
		return nil, errs.NewValidationError("limit", "Limit harus angka > 0")
	}

	records, err := l.transactionRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &entity.HistoryPage{
		Offset:  offset,
		Limit:   limit,
		Records: records,
	}, nil
}

// lockedMutation locks the user's balance, applies mutate to it, persists it and
// appends the record built by newRecord, all in one transaction
func (l *LedgerUseCase) lockedMutation(
	ctx context.Context,
	userID uint64,
	mutate func(balance *entity.Balance) error,
	newRecord func(invoiceNumber string) (*entity.Transaction, error),
) (balance *entity.Balance, record *entity.Transaction, err error) {
	txCtx, err := l.uow.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := l.uow.Rollback(txCtx); rbErr != nil {
			l.logger.Error("Failed to roll back ledger transaction", map[string]any{
				"userId": userID,
				"error":  rbErr.Error(),
			})
		}
	}()

	balances := l.uow.GetBalanceRepository(txCtx)
	balance, err = balances.GetForUpdate(txCtx, userID)
	if err != nil {
		return nil, nil, err
	}
	if err = mutate(balance); err != nil {
		return nil, nil, err
	}
	if err = balances.Save(txCtx, balance); err != nil {
		return nil, nil, err
	}

	record, err = newRecord(l.invoices.Next(l.timeProvider.Now()))
	if err != nil {
		return nil, nil, err
	}
	if err = l.uow.GetTransactionRepository(txCtx).Create(txCtx, record); err != nil {
		return nil, nil, err
	}

	if err = l.uow.Commit(txCtx); err != nil {
		return nil, nil, err
	}
	return balance, record, nil
}

func (l *LedgerUseCase) recordFailure(operation string, userID uint64, err error) {
	kind := errs.KindOf(err)
	l.metrics.LedgerFailed(operation, kind.String())

	fields := errs.LogFields(err)
	fields["userId"] = userID
	fields["operation"] = operation
	if kind == errs.KindInternal {
		l.logger.Error("Ledger operation failed", fields)
		return
	}
	l.logger.Warn("Ledger operation rejected", fields)
}
