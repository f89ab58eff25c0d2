package error

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories surfaced to API callers.
// The numeric value of a Kind is the application status code of the response envelope.
type Kind int

const (
	KindEmailTaken          Kind = 101
	KindValidation          Kind = 102
	KindInvalidCredentials  Kind = 103
	KindNotFound            Kind = 104
	KindInsufficientBalance Kind = 105
	KindUnauthenticated     Kind = 108
	KindRateLimited         Kind = 109
	KindInternal            Kind = 999
)

// String returns a short name for the kind, used in logs and metric labels
func (k Kind) String() string {
	switch k {
	case KindEmailTaken:
		return "email_taken"
	case KindValidation:
		return "validation"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindNotFound:
		return "not_found"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// kindError is a sentinel error bound to a Kind
type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// Kind returns the kind of the sentinel
func (e *kindError) Kind() Kind { return e.kind }

func newKindError(kind Kind, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Base error types
var (
	// ErrEmailTaken is returned when registering an email that already has an account
	ErrEmailTaken = newKindError(KindEmailTaken, "email already registered")

	// ErrValidation is the parent of every request validation failure
	ErrValidation = newKindError(KindValidation, "validation failed")

	// ErrInvalidAmount is returned when a top-up amount is zero or negative
	ErrInvalidAmount = newKindError(KindValidation, "invalid top up amount")

	// ErrAmountOverflow is returned when a credit would push a balance past MaxSafeAmount
	ErrAmountOverflow = newKindError(KindValidation, "amount is too large and would cause overflow")

	// ErrServiceNotFound is returned when a payment names an unknown service code
	ErrServiceNotFound = newKindError(KindValidation, "service not found")

	// ErrInvalidImageFormat is returned when an upload is missing or not an allowed image type
	ErrInvalidImageFormat = newKindError(KindValidation, "invalid image format")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike
	ErrInvalidCredentials = newKindError(KindInvalidCredentials, "invalid credentials")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = newKindError(KindNotFound, "user not found")

	// ErrInsufficientBalance is returned when a user has insufficient funds for a payment
	ErrInsufficientBalance = newKindError(KindInsufficientBalance, "insufficient balance")

	// ErrInvalidToken is returned when a bearer token is missing, malformed, forged or expired
	ErrInvalidToken = newKindError(KindUnauthenticated, "invalid or expired token")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = newKindError(KindRateLimited, "too many requests")

	// ErrDuplicateInvoice is returned when an invoice number collides with a stored one
	ErrDuplicateInvoice = newKindError(KindInternal, "invoice number already exists")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = newKindError(KindInternal, "database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = newKindError(KindInternal, "internal server error")
)

// KindOf resolves the kind of any error, walking wrapped chains.
// Errors that carry no kind are internal.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindInternal
}

// ErrorCode returns the application status code for an error
func ErrorCode(err error) int {
	return int(KindOf(err))
}

// ValidationError reports the first failing validation rule of a request
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a validation error for a field with the rule's message
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Is makes ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Kind returns KindValidation
func (e *ValidationError) Kind() Kind {
	return KindValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"message":    e.Message,
		"error_code": int(KindValidation),
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      int64
	CurrBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d, available %d",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// Kind returns KindInsufficientBalance
func (e *InsufficientBalanceError) Kind() Kind {
	return KindInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      int(KindInsufficientBalance),
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance int64) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// LogFields extracts structured fields from errors that expose them
func LogFields(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error(), "error_code": ErrorCode(err)}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error belongs to the validation kind
func IsValidationError(err error) bool {
	return KindOf(err) == KindValidation
}
