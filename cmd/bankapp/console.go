package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ledgerline/bankcore"
	"github.com/ledgerline/bankcore/identity"
	"github.com/ledgerline/bankcore/ledger"
	"github.com/ledgerline/bankcore/money"
	"github.com/ledgerline/bankcore/registry"
)

// inactivityWarning is the idle span after which a menu redraw prints a
// warning. It never blocks or cancels anything; it is advisory only.
const inactivityWarning = 3 * time.Minute

// console drives the interactive session loop over the core registry.
type console struct {
	reg    *registry.Registry
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger

	lastInteraction time.Time
}

// run is the outer login loop. It exits when stdin is closed.
func (c *console) run() {
	fmt.Fprintln(c.out, "== Banking System ==")

	for {
		c.lastInteraction = time.Now()

		fmt.Fprintln(c.out, "\nLogin as CUSTOMER (8-digit) or ADMIN:")

		id, ok := c.promptNonEmpty("Enter account number or 'ADMIN': ")
		if !ok {
			return
		}

		pin, ok := c.promptNonEmpty("Enter PIN (4-6 digits): ")
		if !ok {
			return
		}

		ident, found := c.reg.FindIdentity(id)
		if !found {
			fmt.Fprintln(c.out, "User not found.")
			continue
		}

		if ident.IsLocked() {
			fmt.Fprintln(c.out, "Account is locked due to failed attempts. Ask admin to unlock.")
			continue
		}

		if !ident.Authenticate(pin) {
			fmt.Fprintf(c.out, "Invalid PIN. Failed attempts: %d/3\n", ident.FailedAttempts())

			if ident.IsLocked() {
				fmt.Fprintln(c.out, "User locked. Ask admin to unlock.")
			}

			c.logger.Warn("authentication failed", zap.String("id", id), zap.Int("failed_attempts", ident.FailedAttempts()))

			continue
		}

		c.logger.Info("session started", zap.String("id", id), zap.Bool("admin", ident.IsAdmin()))

		if ident.IsAdmin() {
			c.adminMenu()
			continue
		}

		acc, found := c.reg.FindAccount(ident.ID())
		if !found {
			// Registration is joint, so a customer identity always has an account.
			fmt.Fprintln(c.out, "Account missing for this user. Contact admin.")
			continue
		}

		c.customerMenu(acc)
	}
}

// ---------------------------------------------------------------------------
// Customer menu
// ---------------------------------------------------------------------------

func (c *console) customerMenu(acc *ledger.Account) {
	for {
		c.warnIfIdle()

		fmt.Fprintln(c.out, strings.TrimLeft(`
-----------------------------
1: Display Account Info
2: Check Balance
3: Deposit Money
4: Withdraw Money
5: View Transaction History
6: Exit
-----------------------------`, "\n"))

		choice, ok := c.readMenuChoice(1, 6)
		if !ok {
			return
		}

		c.lastInteraction = time.Now()

		switch choice {
		case 1:
			c.printAccountInfo(acc)
		case 2:
			fmt.Fprintf(c.out, "Current Balance: %s\n", acc.Balance())
		case 3:
			amount, ok := c.readMoney("Enter deposit amount (10 - 100000): ")
			if !ok {
				return
			}

			if tx, err := acc.Deposit(amount); err != nil {
				c.printOperationError(err)
			} else {
				fmt.Fprintf(c.out, "Deposited: %s | New Balance: %s\n", tx.Amount, tx.BalanceAfter)
			}
		case 4:
			amount, ok := c.readMoney("Enter withdrawal amount (<=5000, daily total <=10000): ")
			if !ok {
				return
			}

			if tx, err := acc.Withdraw(amount); err != nil {
				c.printOperationError(err)
			} else {
				fmt.Fprintf(c.out, "Withdrawn: %s | New Balance: %s\n", tx.Amount, tx.BalanceAfter)
			}
		case 5:
			fmt.Fprintln(c.out, "Transaction History:")
			c.printHistory(acc)
		case 6:
			if c.confirmExit() {
				fmt.Fprintln(c.out, "Goodbye!")
				return
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Admin menu
// ---------------------------------------------------------------------------

func (c *console) adminMenu() {
	for {
		c.warnIfIdle()

		fmt.Fprintln(c.out, strings.TrimLeft(`
-----------------------------
ADMIN MENU
1: View All Accounts
2: View Users (Lock Status)
3: Unlock User
4: View Account History
5: View Account Info
6: Create New Account
7: Exit
-----------------------------`, "\n"))

		choice, ok := c.readMenuChoice(1, 7)
		if !ok {
			return
		}

		c.lastInteraction = time.Now()

		switch choice {
		case 1:
			fmt.Fprintln(c.out, "== Accounts ==")

			for _, acc := range c.reg.ListAccounts() {
				fmt.Fprintf(c.out, "%s | %s | Balance: %s\n", acc.AccountNumber(), acc.HolderName(), acc.Balance())
			}
		case 2:
			fmt.Fprintln(c.out, "== Users ==")

			for _, ident := range c.reg.ListIdentities() {
				label := ident.ID()
				if ident.IsAdmin() {
					label += " (ADMIN)"
				}

				fmt.Fprintf(c.out, "%s | Locked: %t\n", label, ident.IsLocked())
			}
		case 3:
			id, ok := c.promptNonEmpty("Enter account number to unlock (or ADMIN): ")
			if !ok {
				return
			}

			if c.reg.Unlock(id) {
				fmt.Fprintln(c.out, "Unlocked.")
			} else {
				fmt.Fprintln(c.out, "User not found.")
			}
		case 4:
			accountNumber, ok := c.promptNonEmpty("Enter 8-digit account number: ")
			if !ok {
				return
			}

			if acc, found := c.reg.FindAccount(accountNumber); found {
				fmt.Fprintf(c.out, "History for %s:\n", accountNumber)
				c.printHistory(acc)
			} else {
				fmt.Fprintln(c.out, "Account not found.")
			}
		case 5:
			accountNumber, ok := c.promptNonEmpty("Enter 8-digit account number: ")
			if !ok {
				return
			}

			if acc, found := c.reg.FindAccount(accountNumber); found {
				c.printAccountInfo(acc)
			} else {
				fmt.Fprintln(c.out, "Account not found.")
			}
		case 6:
			if !c.createAccount() {
				return
			}
		case 7:
			if c.confirmExit() {
				fmt.Fprintln(c.out, "Signing out of admin.")
				return
			}
		}
	}
}

// createAccount walks the admin through a joint customer registration,
// re-prompting each field until it passes core validation. It returns false
// only when input is exhausted.
func (c *console) createAccount() bool {
	fmt.Fprintln(c.out, "== Create New Customer Account ==")

	var accountNumber string
	for accountNumber == "" {
		value, ok := c.promptNonEmpty("Enter new 8-digit account number: ")
		if !ok {
			return false
		}

		if len(value) != 8 || !isDigits(value) {
			fmt.Fprintln(c.out, "Invalid. Must be exactly 8 digits.")
			continue
		}

		if _, exists := c.reg.FindAccount(value); exists {
			fmt.Fprintln(c.out, "This account number already exists. Choose another.")
			continue
		}

		accountNumber = value
	}

	var acc *ledger.Account
	for acc == nil {
		name, ok := c.promptNonEmpty("Enter full name (letters and spaces, min 3 chars): ")
		if !ok {
			return false
		}

		balance, ok := c.readMoney("Enter initial balance (>= 0): ")
		if !ok {
			return false
		}

		created, err := ledger.NewAccount(accountNumber, name, balance)
		if err != nil {
			c.printOperationError(err)
			continue
		}

		acc = created
	}

	var ident *identity.Identity
	for ident == nil {
		pin, ok := c.promptNonEmpty("Set 4-6 digit PIN: ")
		if !ok {
			return false
		}

		created, err := identity.New(accountNumber, pin)
		if err != nil {
			c.printOperationError(err)
			continue
		}

		ident = created
	}

	if err := c.reg.RegisterCustomer(ident, acc); err != nil {
		c.printOperationError(err)
		return true
	}

	fmt.Fprintln(c.out, "Account created successfully:")
	c.printAccountInfo(acc)

	return true
}

// ---------------------------------------------------------------------------
// Rendering helpers
// ---------------------------------------------------------------------------

func (c *console) printAccountInfo(acc *ledger.Account) {
	fmt.Fprintln(c.out, "---- Account Info ----")
	fmt.Fprintf(c.out, "Account Number : %s\n", acc.AccountNumber())
	fmt.Fprintf(c.out, "Account Holder : %s\n", acc.HolderName())
	fmt.Fprintf(c.out, "Current Balance: %s\n", acc.Balance())
	fmt.Fprintln(c.out, "----------------------")
}

func (c *console) printHistory(acc *ledger.Account) {
	history := acc.History()
	if len(history) == 0 {
		fmt.Fprintln(c.out, "(No transactions yet)")
		return
	}

	for _, tx := range history {
		fmt.Fprintf(c.out, " - %s\n", tx)
	}
}

// printOperationError renders a core domain error the way the menus expect:
// insufficient funds as an operational error, everything else as validation.
func (c *console) printOperationError(err error) {
	var domainErr bankcore.DomainError
	if !errors.As(err, &domainErr) {
		fmt.Fprintf(c.out, "[Unexpected] %v\n", err)
		return
	}

	if domainErr.Code == bankcore.ErrorInsufficientFunds {
		fmt.Fprintf(c.out, "[Error] %s\n", domainErr.Message)
		return
	}

	fmt.Fprintf(c.out, "[Validation] %s\n", domainErr.Message)
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func (c *console) warnIfIdle() {
	if time.Since(c.lastInteraction) >= inactivityWarning {
		fmt.Fprintln(c.out, "[Warning] Session idle for 3+ minutes.")
	}
}

// ---------------------------------------------------------------------------
// Input helpers
// ---------------------------------------------------------------------------

// readLine returns the next trimmed input line. ok is false when stdin is
// exhausted.
func (c *console) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	return strings.TrimSpace(line), true
}

func (c *console) promptNonEmpty(prompt string) (string, bool) {
	for {
		fmt.Fprint(c.out, prompt)

		line, ok := c.readLine()
		if !ok {
			return "", false
		}

		if line != "" {
			return line, true
		}

		fmt.Fprintln(c.out, "Input cannot be empty.")
	}
}

func (c *console) readMenuChoice(min, max int) (int, bool) {
	fmt.Fprintf(c.out, "Choose an option (%d-%d): ", min, max)

	for {
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid input. Enter a number (%d-%d): ", min, max)
			continue
		}

		if n < min || n > max {
			fmt.Fprintf(c.out, "Please enter a valid option (%d-%d): ", min, max)
			continue
		}

		return n, true
	}
}

// readMoney prompts until the input parses as a non-negative amount. The
// core re-validates every amount; this loop is UI polish only.
func (c *console) readMoney(prompt string) (money.Money, bool) {
	for {
		fmt.Fprint(c.out, prompt)

		line, ok := c.readLine()
		if !ok {
			return money.Zero(), false
		}

		amount, err := money.FromString(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a numeric value.")
			continue
		}

		if amount.IsNegative() {
			fmt.Fprintln(c.out, "Amount cannot be negative.")
			continue
		}

		return amount, true
	}
}

func (c *console) confirmExit() bool {
	fmt.Fprint(c.out, "Are you sure you want to exit? (Y/N): ")

	line, ok := c.readLine()
	if !ok {
		return true
	}

	answer := strings.ToUpper(line)

	return answer == "Y" || answer == "YES"
}
