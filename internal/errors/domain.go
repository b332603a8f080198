// Package errors defines the domain error codes handlers translate into
// HTTP responses. Engine packages return plain sentinel errors; this
// mapping layer keeps wire codes out of the calculation code.
package errors

import (
	stderrors "errors"

	"pochi/internal/services/fees"
	"pochi/internal/services/savings"
)

type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

var (
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be greater than zero",
	}
	ErrUnknownCategory = &DomainError{
		Code:    "UNKNOWN_CATEGORY",
		Message: "no fee rule defined for this transaction category",
	}
	ErrBelowMinimumDeposit = &DomainError{
		Code:    "BELOW_MINIMUM_DEPOSIT",
		Message: "principal is below the minimum savings deposit",
	}
	ErrInvalidLockPeriod = &DomainError{
		Code:    "INVALID_LOCK_PERIOD",
		Message: "lock period must be 1, 3, 6 or 12 months",
	}
	ErrAccountNotMature = &DomainError{
		Code:    "ACCOUNT_NOT_MATURE",
		Message: "account has not matured; set early=true to withdraw with penalty",
	}
	ErrAccountAlreadyWithdrawn = &DomainError{
		Code:    "ACCOUNT_ALREADY_WITHDRAWN",
		Message: "savings account has already been withdrawn",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
)

// FromEngine maps an engine sentinel error to its domain error, or nil
// when the error is not an engine error.
func FromEngine(err error) *DomainError {
	switch {
	case stderrors.Is(err, fees.ErrInvalidAmount):
		return ErrInvalidAmount
	case stderrors.Is(err, fees.ErrUnknownCategory):
		return ErrUnknownCategory
	case stderrors.Is(err, savings.ErrBelowMinimumDeposit):
		return ErrBelowMinimumDeposit
	case stderrors.Is(err, savings.ErrInvalidLockPeriod):
		return ErrInvalidLockPeriod
	case stderrors.Is(err, savings.ErrAccountNotMature):
		return ErrAccountNotMature
	case stderrors.Is(err, savings.ErrAccountAlreadyWithdrawn):
		return ErrAccountAlreadyWithdrawn
	}
	return nil
}
