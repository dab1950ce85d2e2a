package bankcore

import "fmt"

// ErrorCode is a domain error code used by ledger and identity validations.
type ErrorCode string

const (
	// ErrorInvalidArgument indicates malformed or missing registration inputs,
	// duplicate keys, or a mismatched identity id / account number pair.
	ErrorInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrorInvalidIdentity indicates identity construction inputs failed validation.
	ErrorInvalidIdentity ErrorCode = "INVALID_IDENTITY"
	// ErrorInvalidAccount indicates account construction inputs failed validation.
	ErrorInvalidAccount ErrorCode = "INVALID_ACCOUNT"
	// ErrorInvalidAmount indicates a non-numeric or non-positive monetary amount.
	ErrorInvalidAmount ErrorCode = "INVALID_AMOUNT"
	// ErrorAmountOutOfRange indicates an amount outside the per-transaction bounds.
	ErrorAmountOutOfRange ErrorCode = "AMOUNT_OUT_OF_RANGE"
	// ErrorDailyLimitExceeded indicates the cumulative daily withdrawal cap was hit.
	ErrorDailyLimitExceeded ErrorCode = "DAILY_LIMIT_EXCEEDED"
	// ErrorInsufficientFunds indicates the balance cannot cover the withdrawal.
	ErrorInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
)

// DomainError represents a structured, recoverable domain validation error.
//
// All failures carried by DomainError are caller-visible and non-fatal: a
// failed operation leaves the entity it targeted unchanged, and retrying is
// a presentation-layer decision.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}
