// Package cache defines the keyed store the business services use to
// memoize upstream reads per account.
package cache

// Store memoizes values per account id. GetOrCompute must be atomic per
// key: while one caller computes a missing entry, concurrent callers for
// the same key wait and then observe the stored value, so a given key
// triggers at most one upstream fetch while an entry is valid.
type Store[V any] interface {
	// GetOrCompute returns the cached value for key, or invokes compute,
	// stores its result and returns it. A compute error is returned as-is
	// and nothing is stored.
	GetOrCompute(key int64, compute func() (V, error)) (V, error)
	// Put replaces the entry for key wholesale.
	Put(key int64, value V)
	// Delete removes the entry for key, if present.
	Delete(key int64)
}
