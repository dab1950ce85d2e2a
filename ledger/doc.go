// Package ledger implements the account and transaction engine.
//
// Account enforces the monetary invariants of the system: two-digit decimal
// precision, per-transaction deposit and withdrawal bounds, the cumulative
// daily withdrawal cap with calendar-day rollover, and non-negative balance.
// Transaction is the immutable, append-only record of one ledger event.
//
// Core flow:
//   - NewAccount validates construction inputs and seeds the opening balance.
//   - Deposit and Withdraw validate, mutate balance, and append history.
//   - History returns a snapshot; callers can never reach the live sequence.
//
// Every mutation is guarded by a per-account mutex, so a single Account is
// safe to share across concurrent callers. The current date used by the
// daily rollover is an injected clock (WithClock), keeping day-boundary
// behavior deterministic under test.
package ledger
