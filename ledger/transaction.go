package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/bankcore"
	"github.com/ledgerline/bankcore/money"
)

// TransactionType classifies a ledger event.
type TransactionType string

const (
	// TypeDeposit increases the account balance.
	TypeDeposit TransactionType = "DEPOSIT"
	// TypeWithdraw decreases the account balance.
	TypeWithdraw TransactionType = "WITHDRAW"
)

// Transaction is the immutable record of one ledger event. It is created
// exactly once per successful deposit or withdrawal and never mutated.
type Transaction struct {
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Type         TransactionType `json:"type"`
	Amount       money.Money     `json:"amount"`
	BalanceAfter money.Money     `json:"balanceAfter"`
	Note         string          `json:"note,omitempty"`
}

// newTransaction builds a record with a fresh id.
func newTransaction(ts time.Time, txType TransactionType, amount, balanceAfter money.Money, note string) Transaction {
	return Transaction{
		ID:           uuid.NewString(),
		Timestamp:    ts,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Note:         note,
	}
}

// String returns the display form:
//
//	[<timestamp>] <TYPE> <amount> | Balance: <balanceAfter>[ | <note>]
func (t Transaction) String() string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(t.Timestamp.Format(time.RFC3339))
	b.WriteString("] ")
	b.WriteString(string(t.Type))
	b.WriteString(" ")
	b.WriteString(t.Amount.String())
	b.WriteString(" | Balance: ")
	b.WriteString(t.BalanceAfter.String())

	if t.Note != "" {
		b.WriteString(" | ")
		b.WriteString(t.Note)
	}

	return b.String()
}

// ParseTransaction reconstructs a record from its display form. Type, amount,
// balance after, timestamp (to second precision), and note survive the round
// trip; the reconstructed record carries a fresh id.
func ParseTransaction(s string) (Transaction, error) {
	invalid := func(msg string) error {
		return bankcore.NewDomainError(bankcore.ErrorInvalidArgument, "transaction", msg)
	}

	if !strings.HasPrefix(s, "[") {
		return Transaction{}, invalid("display form must start with a bracketed timestamp")
	}

	end := strings.Index(s, "] ")
	if end < 0 {
		return Transaction{}, invalid("unterminated timestamp")
	}

	ts, err := time.Parse(time.RFC3339, s[1:end])
	if err != nil {
		return Transaction{}, invalid("timestamp is not RFC3339")
	}

	parts := strings.Split(s[end+2:], " | ")
	if len(parts) < 2 {
		return Transaction{}, invalid("missing balance segment")
	}

	typeAndAmount := strings.SplitN(parts[0], " ", 2)
	if len(typeAndAmount) != 2 {
		return Transaction{}, invalid("missing amount")
	}

	txType := TransactionType(typeAndAmount[0])
	if txType != TypeDeposit && txType != TypeWithdraw {
		return Transaction{}, invalid("unknown transaction type")
	}

	amount, err := money.FromString(typeAndAmount[1])
	if err != nil {
		return Transaction{}, err
	}

	balanceText, ok := strings.CutPrefix(parts[1], "Balance: ")
	if !ok {
		return Transaction{}, invalid("malformed balance segment")
	}

	balanceAfter, err := money.FromString(balanceText)
	if err != nil {
		return Transaction{}, err
	}

	note := ""
	if len(parts) > 2 {
		note = strings.Join(parts[2:], " | ")
	}

	return newTransaction(ts, txType, amount, balanceAfter, note), nil
}
