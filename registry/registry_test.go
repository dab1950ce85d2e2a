package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerline/bankcore"
	"github.com/ledgerline/bankcore/identity"
	"github.com/ledgerline/bankcore/ledger"
	"github.com/ledgerline/bankcore/money"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newCustomer(t *testing.T, accountNumber, holderName, pin, balance string) (*identity.Identity, *ledger.Account) {
	t.Helper()

	ident, err := identity.New(accountNumber, pin)
	require.NoError(t, err)

	acc, err := ledger.NewAccount(accountNumber, holderName, money.MustFromString(balance))
	require.NoError(t, err)

	return ident, acc
}

func newAdmin(t *testing.T) *identity.Identity {
	t.Helper()

	admin, err := identity.New(identity.AdminID, "9999")
	require.NoError(t, err)

	return admin
}

func assertInvalidArgument(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	var domainErr bankcore.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %T: %v", err, err)
	assert.Equal(t, bankcore.ErrorInvalidArgument, domainErr.Code)
}

// ---------------------------------------------------------------------------
// RegisterCustomer
// ---------------------------------------------------------------------------

func TestRegisterCustomer(t *testing.T) {
	reg := New(WithLogger(zap.NewNop()))
	ident, acc := newCustomer(t, "12345678", "Abdulla Shaker", "1234", "500.00")

	require.NoError(t, reg.RegisterCustomer(ident, acc))

	foundIdent, ok := reg.FindIdentity("12345678")
	require.True(t, ok)
	assert.Same(t, ident, foundIdent)

	foundAcc, ok := reg.FindAccount("12345678")
	require.True(t, ok)
	assert.Same(t, acc, foundAcc)
}

func TestRegisterCustomer_InvalidArguments(t *testing.T) {
	ident, acc := newCustomer(t, "12345678", "Abdulla Shaker", "1234", "0")
	otherIdent, err := identity.New("87654321", "4321")
	require.NoError(t, err)

	tests := []struct {
		name  string
		ident *identity.Identity
		acc   *ledger.Account
	}{
		{name: "nil identity", ident: nil, acc: acc},
		{name: "nil account", ident: ident, acc: nil},
		{name: "admin as customer", ident: newAdmin(t), acc: acc},
		{name: "id and account number differ", ident: otherIdent, acc: acc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New()

			assertInvalidArgument(t, reg.RegisterCustomer(tt.ident, tt.acc))
		})
	}
}

func TestRegisterCustomer_DuplicateLeavesRegistryUnchanged(t *testing.T) {
	reg := New()

	firstIdent, firstAcc := newCustomer(t, "12345678", "Abdulla Shaker", "1234", "500.00")
	require.NoError(t, reg.RegisterCustomer(firstIdent, firstAcc))

	secondIdent, err := identity.New("12345678", "5678")
	require.NoError(t, err)
	secondAcc, err := ledger.NewAccount("12345678", "Ahmed Ali", money.Zero())
	require.NoError(t, err)

	assertInvalidArgument(t, reg.RegisterCustomer(secondIdent, secondAcc))

	// Neither half of the failed registration is observable.
	foundIdent, ok := reg.FindIdentity("12345678")
	require.True(t, ok)
	assert.Same(t, firstIdent, foundIdent)

	foundAcc, ok := reg.FindAccount("12345678")
	require.True(t, ok)
	assert.Same(t, firstAcc, foundAcc)

	assert.Len(t, reg.ListIdentities(), 1)
	assert.Len(t, reg.ListAccounts(), 1)
}

// ---------------------------------------------------------------------------
// RegisterAdmin
// ---------------------------------------------------------------------------

func TestRegisterAdmin(t *testing.T) {
	reg := New()

	require.NoError(t, reg.RegisterAdmin(newAdmin(t)))

	admin, ok := reg.FindIdentity(identity.AdminID)
	require.True(t, ok)
	assert.True(t, admin.IsAdmin())

	// No account is paired with the admin identity.
	_, ok = reg.FindAccount(identity.AdminID)
	assert.False(t, ok)
}

func TestRegisterAdmin_RejectsNonAdmin(t *testing.T) {
	reg := New()

	customer, err := identity.New("12345678", "1234")
	require.NoError(t, err)

	assertInvalidArgument(t, reg.RegisterAdmin(customer))
	assertInvalidArgument(t, reg.RegisterAdmin(nil))
}

// ---------------------------------------------------------------------------
// Lookups and listings
// ---------------------------------------------------------------------------

func TestFind_NotFoundIsNotAnError(t *testing.T) {
	reg := New()

	_, ok := reg.FindIdentity("00000000")
	assert.False(t, ok)

	_, ok = reg.FindAccount("00000000")
	assert.False(t, ok)
}

func TestList_ReturnsSnapshots(t *testing.T) {
	reg := New()

	ident, acc := newCustomer(t, "12345678", "Abdulla Shaker", "1234", "500.00")
	require.NoError(t, reg.RegisterCustomer(ident, acc))

	accounts := reg.ListAccounts()
	require.Len(t, accounts, 1)

	accounts[0] = nil

	assert.NotNil(t, reg.ListAccounts()[0], "mutating a listing must not affect the registry")

	identities := reg.ListIdentities()
	require.Len(t, identities, 1)

	identities[0] = nil

	assert.NotNil(t, reg.ListIdentities()[0])
}

// ---------------------------------------------------------------------------
// Unlock
// ---------------------------------------------------------------------------

func TestUnlock(t *testing.T) {
	reg := New()

	ident, acc := newCustomer(t, "12345678", "Abdulla Shaker", "1234", "0")
	require.NoError(t, reg.RegisterCustomer(ident, acc))

	for i := 0; i < 3; i++ {
		ident.Authenticate("0000")
	}
	require.True(t, ident.IsLocked())

	assert.True(t, reg.Unlock("12345678"))
	assert.False(t, ident.IsLocked())
	assert.True(t, ident.Authenticate("1234"))

	assert.False(t, reg.Unlock("99999999"), "unknown id reports false")
}

// ---------------------------------------------------------------------------
// Concurrency
// ---------------------------------------------------------------------------

func TestRegisterCustomer_ConcurrentRegistrations(t *testing.T) {
	reg := New()

	const workers = 20

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		accountNumber := fmt.Sprintf("%08d", 10000000+i)

		go func() {
			defer wg.Done()

			ident, err := identity.New(accountNumber, "1234")
			assert.NoError(t, err)

			acc, err := ledger.NewAccount(accountNumber, "Load Test", money.Zero())
			assert.NoError(t, err)

			assert.NoError(t, reg.RegisterCustomer(ident, acc))
		}()
	}

	wg.Wait()

	assert.Len(t, reg.ListAccounts(), workers)
	assert.Len(t, reg.ListIdentities(), workers)
}
