// Package identity implements the credential holder and its authentication
// lockout state machine.
//
// An Identity is either the administrative identity (id "ADMIN") or a
// customer identity whose id is the 8-digit account number it owns. PINs are
// validated at construction and stored only as bcrypt hashes. Three
// consecutive failed authentications lock the identity; a locked identity
// rejects every attempt outright until Unlock restores it.
//
// Identity never references account state; the customer linkage is purely
// the id / account-number equality enforced by the registry at registration.
package identity
