package registry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ledgerline/bankcore"
	"github.com/ledgerline/bankcore/identity"
	"github.com/ledgerline/bankcore/ledger"
)

// Registry owns the id → Identity and accountNumber → Account mappings and
// mediates registration and lookup.
//
// An RWMutex guards both maps together: joint customer registration takes
// the write lock so it is atomic with respect to concurrent lookups.
type Registry struct {
	mu         sync.RWMutex
	identities map[string]*identity.Identity
	accounts   map[string]*ledger.Account
	logger     *zap.Logger
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger attaches a structured logger for registration and unlock audit
// events. Without it the registry logs nowhere.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		identities: make(map[string]*identity.Identity),
		accounts:   make(map[string]*ledger.Account),
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RegisterCustomer inserts a paired identity and account in one atomic step.
//
// It fails with INVALID_ARGUMENT when either half is nil, the identity is
// the admin identity, the identity id does not equal the account number, or
// the account number is already registered. On failure neither map changes.
func (r *Registry) RegisterCustomer(ident *identity.Identity, acc *ledger.Account) error {
	if ident == nil || acc == nil {
		return bankcore.NewDomainError(bankcore.ErrorInvalidArgument, "customer", "identity and account are required")
	}

	if ident.IsAdmin() {
		return bankcore.NewDomainError(bankcore.ErrorInvalidArgument, "identity", "admin cannot be registered as a customer")
	}

	if ident.ID() != acc.AccountNumber() {
		return bankcore.NewDomainError(bankcore.ErrorInvalidArgument, "identity",
			"identity id must match the account number")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[acc.AccountNumber()]; exists {
		return bankcore.NewDomainError(bankcore.ErrorInvalidArgument, "accountNumber", "account number already exists")
	}

	r.identities[ident.ID()] = ident
	r.accounts[acc.AccountNumber()] = acc

	r.logger.Info("customer registered",
		zap.String("account_number", acc.AccountNumber()),
		zap.String("holder_name", acc.HolderName()),
	)

	return nil
}

// RegisterAdmin inserts the administrative identity into the id map. No
// account is paired with it. It fails with INVALID_ARGUMENT unless the
// identity is the admin identity.
func (r *Registry) RegisterAdmin(ident *identity.Identity) error {
	if ident == nil || !ident.IsAdmin() {
		return bankcore.NewDomainError(bankcore.ErrorInvalidArgument, "identity", "must provide the ADMIN identity")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.identities[ident.ID()] = ident

	r.logger.Info("admin registered")

	return nil
}

// FindIdentity looks up an identity by exact id. The second return value
// reports whether it exists; a miss is not an error.
func (r *Registry) FindIdentity(id string) (*identity.Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ident, ok := r.identities[id]

	return ident, ok
}

// FindAccount looks up an account by exact account number. The second return
// value reports whether it exists; a miss is not an error.
func (r *Registry) FindAccount(accountNumber string) (*ledger.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[accountNumber]

	return acc, ok
}

// ListAccounts returns a snapshot of all registered accounts in unspecified
// order. Mutating the returned slice never affects the registry.
func (r *Registry) ListAccounts() []*ledger.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ledger.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, acc)
	}

	return out
}

// ListIdentities returns a snapshot of all registered identities in
// unspecified order. Mutating the returned slice never affects the registry.
func (r *Registry) ListIdentities() []*identity.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*identity.Identity, 0, len(r.identities))
	for _, ident := range r.identities {
		out = append(out, ident)
	}

	return out
}

// Unlock clears the lockout state of the identity with the given id. It
// returns whether the id existed; unlocking an already-active identity is a
// no-op that still reports true.
func (r *Registry) Unlock(id string) bool {
	r.mu.RLock()
	ident, ok := r.identities[id]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	ident.Unlock()

	r.logger.Info("identity unlocked", zap.String("id", id))

	return true
}
