package ledger

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ledgerline/bankcore"
	"github.com/ledgerline/bankcore/money"
)

// Withdrawal and deposit policy limits. These are fixed policy constants,
// not runtime configuration.
var (
	// MinDeposit is the smallest accepted deposit per transaction.
	MinDeposit = money.MustFromString("10.00")
	// MaxDeposit is the largest accepted deposit per transaction.
	MaxDeposit = money.MustFromString("100000.00")
	// MaxWithdrawPerTx is the largest accepted withdrawal per transaction.
	MaxWithdrawPerTx = money.MustFromString("5000.00")
	// MaxWithdrawDaily is the cumulative withdrawal cap per calendar day.
	MaxWithdrawDaily = money.MustFromString("10000.00")
)

const minHolderNameLen = 3

var (
	accountNumberPattern = regexp.MustCompile(`^\d{8}$`)
	holderNamePattern    = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// Account is a mutex-guarded ledger account: balance, append-only history,
// and the daily withdrawal tracking state.
//
// accountNumber and holderName are immutable after construction; balance,
// dailyWithdrawTotal, lastWithdrawalDay, and history mutate only inside
// Deposit and Withdraw under the account mutex.
type Account struct {
	mu                 sync.Mutex
	accountNumber      string
	holderName         string
	balance            money.Money
	dailyWithdrawTotal money.Money
	lastWithdrawalDay  time.Time
	history            []Transaction

	now func() time.Time
}

// Option configures an Account at construction.
type Option func(*Account)

// WithClock overrides the wall clock used for transaction timestamps and the
// daily-rollover calendar check. Intended for tests and replay tooling.
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAccount validates construction inputs and returns an account seeded
// with the initial balance. A positive initial balance records one DEPOSIT
// transaction noted "Initial balance" whose balance-after equals the opening
// balance.
//
// Validation failures return INVALID_ACCOUNT (malformed account number or
// holder name) or INVALID_AMOUNT (negative initial balance) domain errors.
func NewAccount(accountNumber, holderName string, initialBalance money.Money, opts ...Option) (*Account, error) {
	if !accountNumberPattern.MatchString(accountNumber) {
		return nil, bankcore.NewDomainError(bankcore.ErrorInvalidAccount, "accountNumber", "account number must be exactly 8 digits")
	}

	if len(strings.TrimSpace(holderName)) < minHolderNameLen || !holderNamePattern.MatchString(holderName) {
		return nil, bankcore.NewDomainError(bankcore.ErrorInvalidAccount, "holderName", "name must be letters/spaces only, min length 3")
	}

	if initialBalance.IsNegative() {
		return nil, bankcore.NewDomainError(bankcore.ErrorInvalidAmount, "initialBalance", "initial balance cannot be negative")
	}

	a := &Account{
		accountNumber: accountNumber,
		holderName:    holderName,
		balance:       initialBalance,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.lastWithdrawalDay = a.now()

	if initialBalance.IsPositive() {
		a.history = append(a.history, newTransaction(a.now(), TypeDeposit, initialBalance, initialBalance, "Initial balance"))
	}

	return a, nil
}

// AccountNumber returns the immutable 8-digit account number.
func (a *Account) AccountNumber() string {
	return a.accountNumber
}

// HolderName returns the immutable account holder name.
func (a *Account) HolderName() string {
	return a.holderName
}

// Balance returns the current balance.
func (a *Account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// DailyWithdrawnTotal returns the amount withdrawn so far on the account's
// current withdrawal day. It does not apply the day rollover; the total is
// reported as last evaluated.
func (a *Account) DailyWithdrawnTotal() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.dailyWithdrawTotal
}

// History returns a snapshot of the transaction history in insertion
// (chronological) order. Mutating the returned slice never affects the
// account.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Transaction, len(a.history))
	copy(out, a.history)

	return out
}

// Deposit credits the amount to the balance and appends a DEPOSIT record.
//
// The amount must lie within [MinDeposit, MaxDeposit]; otherwise the call
// fails with AMOUNT_OUT_OF_RANGE and the account is left unchanged.
func (a *Account) Deposit(amount money.Money) (Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.LessThan(MinDeposit) {
		return Transaction{}, bankcore.NewDomainError(bankcore.ErrorAmountOutOfRange, "amount",
			fmt.Sprintf("minimum deposit is %s", MinDeposit))
	}

	if amount.GreaterThan(MaxDeposit) {
		return Transaction{}, bankcore.NewDomainError(bankcore.ErrorAmountOutOfRange, "amount",
			fmt.Sprintf("maximum deposit is %s", MaxDeposit))
	}

	a.balance = a.balance.Add(amount)

	tx := newTransaction(a.now(), TypeDeposit, amount, a.balance, "")
	a.history = append(a.history, tx)

	return tx, nil
}

// Withdraw debits the amount from the balance and appends a WITHDRAW record
// noting the cumulative daily total.
//
// Checks run in this order: positive amount, per-transaction cap, daily
// rollover, daily cap, sufficient funds. The daily rollover runs eagerly
// before the cap checks and is not rolled back when a later check fails;
// the reset is idempotent within a calendar day, so a rejected withdrawal
// can still move the account onto the new day. All other state is left
// unchanged on failure.
func (a *Account) Withdraw(amount money.Money) (Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !amount.IsPositive() {
		return Transaction{}, bankcore.NewDomainError(bankcore.ErrorInvalidAmount, "amount", "withdrawal must be positive")
	}

	if amount.GreaterThan(MaxWithdrawPerTx) {
		return Transaction{}, bankcore.NewDomainError(bankcore.ErrorAmountOutOfRange, "amount",
			fmt.Sprintf("max per transaction: %s", MaxWithdrawPerTx))
	}

	today := a.now()
	if !sameCalendarDay(today, a.lastWithdrawalDay) {
		a.dailyWithdrawTotal = money.Zero()
		a.lastWithdrawalDay = today
	}

	candidateDailyTotal := a.dailyWithdrawTotal.Add(amount)
	if candidateDailyTotal.GreaterThan(MaxWithdrawDaily) {
		return Transaction{}, bankcore.NewDomainError(bankcore.ErrorDailyLimitExceeded, "amount",
			fmt.Sprintf("daily limit exceeded (%s), used: %s", MaxWithdrawDaily, a.dailyWithdrawTotal))
	}

	if amount.GreaterThan(a.balance) {
		return Transaction{}, bankcore.NewDomainError(bankcore.ErrorInsufficientFunds, "amount",
			fmt.Sprintf("insufficient funds, balance: %s, requested: %s", a.balance, amount))
	}

	a.balance = a.balance.Sub(amount)
	a.dailyWithdrawTotal = candidateDailyTotal

	note := fmt.Sprintf("Daily used: %s/%s", a.dailyWithdrawTotal, MaxWithdrawDaily)

	tx := newTransaction(today, TypeWithdraw, amount, a.balance, note)
	a.history = append(a.history, tx)

	return tx, nil
}

// sameCalendarDay reports whether both instants fall on the same calendar
// date in a's location.
func sameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}
