// Package cache provides the in-memory implementation of the keyed store,
// backed by an expirable LRU so entries are bounded in both count and age.
package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/bdelibalta/fabrick-gateway/pkg/cache"
)

const lockStripes = 64

// Memory is a bounded TTL cache with per-key single-flight semantics.
// Mutation is atomic per key: a striped mutex is held across the
// check-compute-store sequence of GetOrCompute.
type Memory[V any] struct {
	lru   *expirable.LRU[int64, V]
	locks [lockStripes]sync.Mutex
}

// NewMemory creates a cache holding at most size entries, each expiring
// after ttl.
func NewMemory[V any](size int, ttl time.Duration) *Memory[V] {
	return &Memory[V]{
		lru: expirable.NewLRU[int64, V](size, nil, ttl),
	}
}

func (c *Memory[V]) lock(key int64) *sync.Mutex {
	return &c.locks[uint64(key)%lockStripes]
}

// GetOrCompute implements cache.Store.
func (c *Memory[V]) GetOrCompute(key int64, compute func() (V, error)) (V, error) {
	mu := c.lock(key)
	mu.Lock()
	defer mu.Unlock()

	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.lru.Add(key, v)
	return v, nil
}

// Put implements cache.Store.
func (c *Memory[V]) Put(key int64, value V) {
	mu := c.lock(key)
	mu.Lock()
	defer mu.Unlock()
	c.lru.Add(key, value)
}

// Delete implements cache.Store.
func (c *Memory[V]) Delete(key int64) {
	mu := c.lock(key)
	mu.Lock()
	defer mu.Unlock()
	c.lru.Remove(key)
}

// Ensure Memory implements cache.Store
var _ cache.Store[int] = (*Memory[int])(nil)
