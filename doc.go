// Package bankcore provides the shared domain primitives used across the
// banking ledger subpackages.
//
// The package defines the typed domain error model (ErrorCode, DomainError)
// that every mutating operation in money, ledger, identity, and registry
// returns, plus small cross-cutting helpers used by the console entrypoint.
//
// Typical error handling at a call site:
//
//	if err := acc.Withdraw(amt); err != nil {
//	    var domainErr bankcore.DomainError
//	    if errors.As(err, &domainErr) && domainErr.Code == bankcore.ErrorInsufficientFunds {
//	        // recoverable: re-prompt the caller
//	    }
//	}
//
// This package is intentionally dependency-light; the domain logic lives in
// subpackages such as money, ledger, identity, and registry.
package bankcore
