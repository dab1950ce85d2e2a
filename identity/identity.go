package identity

import (
	"regexp"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerline/bankcore"
)

// AdminID is the literal id of the administrative identity.
const AdminID = "ADMIN"

// maxFailedAttempts is the number of consecutive failures that locks an identity.
const maxFailedAttempts = 3

var (
	customerIDPattern = regexp.MustCompile(`^\d{8}$`)
	pinPattern        = regexp.MustCompile(`^\d{4,6}$`)
)

// Identity is a mutex-guarded credential holder.
//
// id is immutable after construction. failedAttempts and locked mutate only
// inside Authenticate and Unlock under the identity mutex.
type Identity struct {
	mu             sync.Mutex
	id             string
	pinHash        []byte
	failedAttempts int
	locked         bool
}

// New validates the id and PIN and returns an identity with the PIN stored
// as a bcrypt hash.
//
// The id must be AdminID or exactly 8 decimal digits; the PIN must be 4 to 6
// decimal digits. Validation failures return INVALID_IDENTITY domain errors.
func New(id, pin string) (*Identity, error) {
	if id != AdminID && !customerIDPattern.MatchString(id) {
		return nil, bankcore.NewDomainError(bankcore.ErrorInvalidIdentity, "id",
			"id must be an 8-digit account number or 'ADMIN'")
	}

	if !pinPattern.MatchString(pin) {
		return nil, bankcore.NewDomainError(bankcore.ErrorInvalidIdentity, "pin", "PIN must be 4-6 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, bankcore.NewDomainError(bankcore.ErrorInvalidIdentity, "pin", "PIN could not be hashed")
	}

	return &Identity{id: id, pinHash: hash}, nil
}

// ID returns the immutable identity id.
func (i *Identity) ID() string {
	return i.id
}

// IsAdmin reports whether this is the administrative identity.
func (i *Identity) IsAdmin() bool {
	return i.id == AdminID
}

// Authenticate checks the entered PIN against the stored credential.
//
// A locked identity rejects the attempt without side effects. On a mismatch
// the failure counter increments, and the third consecutive failure locks
// the identity. A match resets the counter to zero.
func (i *Identity) Authenticate(pin string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.locked {
		return false
	}

	if bcrypt.CompareHashAndPassword(i.pinHash, []byte(pin)) != nil {
		i.failedAttempts++
		if i.failedAttempts >= maxFailedAttempts {
			i.locked = true
		}

		return false
	}

	i.failedAttempts = 0

	return true
}

// IsLocked reports whether the identity is locked out.
func (i *Identity) IsLocked() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.locked
}

// FailedAttempts returns the current consecutive-failure count.
func (i *Identity) FailedAttempts() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.failedAttempts
}

// Unlock unconditionally restores the identity to the active state and
// resets the failure counter. It is an administrative override and always
// succeeds regardless of the prior state.
func (i *Identity) Unlock() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.locked = false
	i.failedAttempts = 0
}
