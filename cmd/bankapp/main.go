// Command bankapp runs the interactive console front end over the banking
// core: registry-mediated login, a customer menu for ledger operations, and
// an admin menu for account administration.
//
// Configuration comes from the environment (optionally via a .env file):
//
//	ADMIN_PIN  admin login PIN, 4-6 digits (default "9999")
//	LOG_LEVEL  zap level for audit logging (default "info")
//	SEED_DEMO  seed two demo customers on startup (default "true")
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ledgerline/bankcore"
	"github.com/ledgerline/bankcore/identity"
	"github.com/ledgerline/bankcore/ledger"
	"github.com/ledgerline/bankcore/money"
	"github.com/ledgerline/bankcore/registry"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	logger, err := newLogger(bankcore.GetenvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	reg := registry.New(registry.WithLogger(logger))

	if err := seed(reg); err != nil {
		logger.Error("startup seeding failed", zap.Error(err))
		os.Exit(1)
	}

	app := &console{
		reg:    reg,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		logger: logger,
	}

	app.run()
}

// newLogger builds a JSON zap logger at the given level, writing to stderr
// so audit output never interleaves with the interactive menus on stdout.
func newLogger(level string) (*zap.Logger, error) {
	var parsed zapcore.Level
	if err := parsed.Set(level); err != nil {
		return nil, fmt.Errorf("invalid level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	return cfg.Build()
}

// seed registers the admin identity and, unless SEED_DEMO=false, two demo
// customer accounts.
func seed(reg *registry.Registry) error {
	admin, err := identity.New(identity.AdminID, bankcore.GetenvOrDefault("ADMIN_PIN", "9999"))
	if err != nil {
		return fmt.Errorf("admin identity: %w", err)
	}

	if err := reg.RegisterAdmin(admin); err != nil {
		return fmt.Errorf("register admin: %w", err)
	}

	if !bankcore.GetenvBoolOrDefault("SEED_DEMO", true) {
		return nil
	}

	demo := []struct {
		accountNumber string
		holderName    string
		pin           string
		balance       string
	}{
		{accountNumber: "12345678", holderName: "Abdulla Shaker", pin: "1234", balance: "500.00"},
		{accountNumber: "87654321", holderName: "Ahmed Ali", pin: "4321", balance: "1500.00"},
	}

	for _, c := range demo {
		ident, err := identity.New(c.accountNumber, c.pin)
		if err != nil {
			return fmt.Errorf("demo identity %s: %w", c.accountNumber, err)
		}

		balance, err := money.FromString(c.balance)
		if err != nil {
			return fmt.Errorf("demo balance %s: %w", c.accountNumber, err)
		}

		acc, err := ledger.NewAccount(c.accountNumber, c.holderName, balance)
		if err != nil {
			return fmt.Errorf("demo account %s: %w", c.accountNumber, err)
		}

		if err := reg.RegisterCustomer(ident, acc); err != nil {
			return fmt.Errorf("register demo customer %s: %w", c.accountNumber, err)
		}
	}

	return nil
}
