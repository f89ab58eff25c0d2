package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
)

// Balance is the spendable amount owned by one user
type Balance struct {
	UserID    uint64
	amount    int64 // never negative, never above MaxSafeAmount
	UpdatedAt time.Time
}

// NewBalance wraps a stored amount, rejecting values outside the ledger's range
func NewBalance(userID uint64, amount int64) (*Balance, error) {
	if amount < 0 || amount > MaxSafeAmount {
		return nil, fmt.Errorf("%w: balance %d out of range for user %d", errs.ErrInternalServer, amount, userID)
	}
	return &Balance{UserID: userID, amount: amount}, nil
}

// Amount returns the current amount
func (b *Balance) Amount() int64 {
	return b.amount
}

// Credit adds a positive amount
func (b *Balance) Credit(amount int64, timeProvider coreport.TimeProvider) error {
	if err := ValidateTopUpAmount(amount); err != nil {
		return err
	}
	sum, err := AddAmounts(b.amount, amount)
	if err != nil {
		return err
	}
	b.amount = sum
	b.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts a positive amount; the balance is left untouched when it cannot cover it
func (b *Balance) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return fmt.Errorf("%w: debit of %d", errs.ErrInvalidAmount, amount)
	}
	if b.amount < amount {
		return errs.NewInsufficientBalanceError(b.UserID, amount, b.amount)
	}
	b.amount -= amount
	b.UpdatedAt = timeProvider.Now()
	return nil
}
