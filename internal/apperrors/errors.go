package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request conflicts with the current state (e.g. reversing twice).
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected failure in infrastructure code.
var ErrInternal = errors.New("internal error")

// ErrUnbalancedEntry indicates a journal entry whose debits and credits differ.
var ErrUnbalancedEntry = errors.New("unbalanced journal entry")

// ErrUnknownAccount indicates a journal line referencing an account that does not exist.
var ErrUnknownAccount = errors.New("unknown account")

// ErrInvalidRate indicates a negative or otherwise unusable tax rate.
var ErrInvalidRate = errors.New("invalid rate")

// DuplicateCodeError is returned when an account code is already taken.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("account code %q already exists", e.Code)
}

func (e *DuplicateCodeError) Unwrap() error { return ErrDuplicate }

// UnbalancedEntryError carries the per-currency totals of a rejected entry.
// Amounts are in minor units of Currency.
type UnbalancedEntryError struct {
	Currency  string
	Debits    int64
	Credits   int64
	Imbalance int64 // Debits - Credits
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("unbalanced entry in %s: debits %d, credits %d, imbalance %d",
		e.Currency, e.Debits, e.Credits, e.Imbalance)
}

func (e *UnbalancedEntryError) Unwrap() error { return ErrUnbalancedEntry }

// UnknownAccountError names the account reference that could not be resolved.
type UnknownAccountError struct {
	Ref string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account %q", e.Ref)
}

func (e *UnknownAccountError) Unwrap() error { return ErrUnknownAccount }

// InvalidRateError is returned by the VAT calculator for rates below zero.
type InvalidRateError struct {
	Rate string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate %s: must be >= 0", e.Rate)
}

func (e *InvalidRateError) Unwrap() error { return ErrInvalidRate }

// AppError wraps infrastructure failures with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }
