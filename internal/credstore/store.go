// Package credstore implements durable, encrypted-at-rest, device-scoped
// key/value storage for session secrets. The session layer uses it for the
// token and user-id slots, but keys are arbitrary strings so other secrets
// can share the store.
package credstore

import "context"

// Store is the credential storage contract.
//
// Contract:
//   - Save overwrites atomically: a concurrent Get never observes a gap
//     between the removal of the old value and the insertion of the new one.
//   - Get reports absence via the ok flag, never via an error. Errors are
//     reserved for storage-level failures.
//   - Delete is idempotent: removing a missing key is a success.
//   - DeleteAll removes every entry in the store's own namespace and leaves
//     other namespaces on the same medium untouched.
//
// Implementations never perform network I/O and never retry; retry policy
// belongs to the caller.
type Store interface {
	Save(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	DeleteAll(ctx context.Context) error
}
