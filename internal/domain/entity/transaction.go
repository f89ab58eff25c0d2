package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
)

// TransactionType distinguishes credits from debits in the ledger
type TransactionType string

// Transaction types
const (
	TransactionTypeTopUp   TransactionType = "TOPUP"
	TransactionTypePayment TransactionType = "PAYMENT"
)

// TopUpDescription is the description recorded on every top-up
const TopUpDescription = "Top Up balance"

// Transaction is an immutable ledger record of one successful top-up or payment
type Transaction struct {
	ID            uint64          // Storage identifier
	UserID        uint64          // Owner of the record
	InvoiceNumber string          // Globally unique invoice identifier
	ServiceCode   *string         // Paid service, nil for top-ups
	Type          TransactionType // TOPUP or PAYMENT
	Description   string          // Service name for payments, TopUpDescription for top-ups
	TotalAmount   int64           // Always positive
	CreatedOn     time.Time       // When the record was written
}

// Receipt is returned to the caller after a successful payment
type Receipt struct {
	InvoiceNumber   string
	ServiceCode     string
	ServiceName     string
	TransactionType TransactionType
	TotalAmount     int64
	CreatedOn       time.Time
}

// HistoryPage is one page of a user's ledger, most recent first
type HistoryPage struct {
	Offset  int
	Limit   *int
	Records []*Transaction
}

// NewTopUpTransaction builds the record for a credit of amount
func NewTopUpTransaction(userID uint64, invoiceNumber string, amount int64, now time.Time) (*Transaction, error) {
	t := &Transaction{
		UserID:        userID,
		InvoiceNumber: invoiceNumber,
		Type:          TransactionTypeTopUp,
		Description:   TopUpDescription,
		TotalAmount:   amount,
		CreatedOn:     now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewPaymentTransaction builds the record for paying service's tariff
func NewPaymentTransaction(userID uint64, invoiceNumber string, service *Service, now time.Time) (*Transaction, error) {
	code := service.Code
	t := &Transaction{
		UserID:        userID,
		InvoiceNumber: invoiceNumber,
		ServiceCode:   &code,
		Type:          TransactionTypePayment,
		Description:   service.Name,
		TotalAmount:   service.Tariff,
		CreatedOn:     now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the record invariants
func (t *Transaction) Validate() error {
	if t.UserID == 0 {
		return fmt.Errorf("%w: transaction without owner", errs.ErrInternalServer)
	}
	if t.InvoiceNumber == "" {
		return fmt.Errorf("%w: transaction without invoice number", errs.ErrInternalServer)
	}
	if t.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount %d", errs.ErrInvalidAmount, t.TotalAmount)
	}

	switch t.Type {
	case TransactionTypeTopUp:
		if t.ServiceCode != nil {
			return fmt.Errorf("%w: top up must not reference a service", errs.ErrInternalServer)
		}
	case TransactionTypePayment:
		if t.ServiceCode == nil || *t.ServiceCode == "" {
			return fmt.Errorf("%w: payment must reference a service", errs.ErrInternalServer)
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", errs.ErrInternalServer, t.Type)
	}
	return nil
}

// Receipt projects a payment record into the caller-facing receipt
func (t *Transaction) Receipt(serviceName string) Receipt {
	code := ""
	if t.ServiceCode != nil {
		code = *t.ServiceCode
	}
	return Receipt{
		InvoiceNumber:   t.InvoiceNumber,
		ServiceCode:     code,
		ServiceName:     serviceName,
		TransactionType: t.Type,
		TotalAmount:     t.TotalAmount,
		CreatedOn:       t.CreatedOn,
	}
}
