// Package registry implements the aggregate that owns every identity and
// account in the system.
//
// Registry enforces the linkage invariant between credentials and accounts:
// every non-admin identity id equals exactly one account number, and both
// halves of a customer registration are inserted in one atomic step under
// the registry lock, so a partially registered customer is never observable.
//
// The registry holds no ambient state; it is constructed once and threaded
// explicitly through the presentation layer.
package registry
