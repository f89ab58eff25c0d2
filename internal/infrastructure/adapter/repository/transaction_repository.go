package repository

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:          transaction.UserID,
		InvoiceNumber:   transaction.InvoiceNumber,
		ServiceCode:     transaction.ServiceCode,
		TransactionType: string(transaction.Type),
		Description:     transaction.Description,
		TotalAmount:     transaction.TotalAmount,
		CreatedOn:       transaction.CreatedOn,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		InvoiceNumber: m.InvoiceNumber,
		ServiceCode:   m.ServiceCode,
		Type:          entity.TransactionType(m.TransactionType),
		Description:   m.Description,
		TotalAmount:   m.TotalAmount,
		CreatedOn:     m.CreatedOn,
	}
}

// Create appends a ledger record and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"invoice_number": transaction.InvoiceNumber,
		"user_id":        transaction.UserID,
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate invoice number detected", map[string]any{
				"invoice_number": transaction.InvoiceNumber,
				"user_id":        transaction.UserID,
			})
			return errs.ErrDuplicateInvoice
		}
		return wrapDatabaseError(r.logger, r.errorClassifier, "creating transaction", result.Error, map[string]any{
			"invoice_number": transaction.InvoiceNumber,
			"user_id":        transaction.UserID,
		})
	}

	transaction.ID = transactionModel.ID
	r.logger.Info("Transaction created successfully", map[string]any{
		"invoice_number":   transaction.InvoiceNumber,
		"user_id":          transaction.UserID,
		"transaction_type": transactionModel.TransactionType,
		"total_amount":     transaction.TotalAmount,
	})
	return nil
}

// ListByUser returns a user's records, newest first, with id breaking ties
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, offset int, limit *int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_on DESC").
		Order("id DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit != nil {
		query = query.Limit(*limit)
	}

	var transactionModels []model.Transaction
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, wrapDatabaseError(r.logger, r.errorClassifier, "listing transactions", err, map[string]any{
			"user_id": userID,
			"offset":  offset,
		})
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}
