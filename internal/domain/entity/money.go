package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
)

// MaxSafeAmount is the largest balance or amount the ledger accepts (2^53 - 1).
// Clients decode amounts as IEEE-754 doubles, so anything above it would lose precision on the wire.
const MaxSafeAmount int64 = 1<<53 - 1

// ValidateTopUpAmount checks that a requested top-up is strictly positive and representable
func ValidateTopUpAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amount)
	}
	if amount > MaxSafeAmount {
		return fmt.Errorf("%w: got %d", errs.ErrAmountOverflow, amount)
	}
	return nil
}

// AddAmounts sums two non-negative amounts, refusing results above MaxSafeAmount
func AddAmounts(current, delta int64) (int64, error) {
	if current < 0 || delta < 0 {
		return 0, fmt.Errorf("%w: negative operand", errs.ErrInvalidAmount)
	}
	if delta > MaxSafeAmount-current {
		return 0, fmt.Errorf("%w: %d + %d", errs.ErrAmountOverflow, current, delta)
	}
	return current + delta, nil
}
