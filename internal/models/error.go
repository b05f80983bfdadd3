package models

import (
	"errors"
	"fmt"
)

var ErrInvalidAmount = errors.New("invalid amount")

// InvalidAmountError is returned for an amount that is missing, not a
// finite number, or negative.
type InvalidAmountError struct {
	Amount string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidAmount, e.Amount, e.Reason)
}

func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }

func InvalidAmount(amount, reason string) *InvalidAmountError {
	return &InvalidAmountError{Amount: amount, Reason: reason}
}
