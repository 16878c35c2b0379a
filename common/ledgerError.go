package common

import "errors"

// ErrorCategory groups ledger errors by their cause
type ErrorCategory uint8

const (
	// CategoryValidation is used for malformed or out of bounds parameters
	CategoryValidation ErrorCategory = iota + 1
	// CategoryAuthorization is used when the caller is not allowed to perform the operation
	CategoryAuthorization
	// CategoryStateTiming is used when the ledger state or the current time does not permit the operation
	CategoryStateTiming
	// CategoryCapacity is used when a supply limit would be exceeded
	CategoryCapacity
	// CategoryBalanceAllowance is used for insufficient balance or allowance
	CategoryBalanceAllowance
)

// String returns the human readable form of the category
func (c ErrorCategory) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryAuthorization:
		return "authorization"
	case CategoryStateTiming:
		return "state"
	case CategoryCapacity:
		return "capacity"
	case CategoryBalanceAllowance:
		return "balance"
	default:
		return "unknown"
	}
}

// LedgerError is an error returned by a ledger operation. It carries a stable reason tag that
// callers can branch on.
type LedgerError struct {
	tag      string
	category ErrorCategory
	message  string
}

// NewLedgerError creates a new ledger error
func NewLedgerError(tag string, category ErrorCategory, message string) *LedgerError {
	return &LedgerError{
		tag:      tag,
		category: category,
		message:  message,
	}
}

// Error returns the error message
func (e *LedgerError) Error() string {
	return e.message
}

// Tag returns the stable reason tag
func (e *LedgerError) Tag() string {
	return e.tag
}

// Category returns the error category
func (e *LedgerError) Category() ErrorCategory {
	return e.category
}

// ReasonTag returns the reason tag of the ledger error found in the provided error chain or an
// empty string if there is none
func ReasonTag(err error) string {
	var ledgerErr *LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.tag
	}

	return ""
}

// CategoryOf returns the category of the ledger error found in the provided error chain or 0 if
// there is none
func CategoryOf(err error) ErrorCategory {
	var ledgerErr *LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.category
	}

	return 0
}
