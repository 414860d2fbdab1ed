// Package keymutex provides mutual exclusion keyed by string, so that
// operations on the same session serialize while unrelated sessions
// proceed independently.
package keymutex

import (
	"hash/fnv"
	"sync"
)

const defaultShards = 64

// KeyMutex serializes callers per key. Keys are hashed onto a fixed
// set of shards, so two distinct keys may occasionally share a lock;
// that only costs throughput, never correctness.
type KeyMutex struct {
	shards []sync.Mutex
}

// Config holds configuration for a KeyMutex
type Config struct {
	// Shards is the number of underlying mutexes. Zero means the default.
	Shards int
}

// New creates a new KeyMutex
func New(cfg *Config) *KeyMutex {
	shards := defaultShards
	if cfg != nil && cfg.Shards > 0 {
		shards = cfg.Shards
	}

	return &KeyMutex{
		shards: make([]sync.Mutex, shards),
	}
}

// Lock acquires the lock for the given key
func (m *KeyMutex) Lock(key string) {
	m.shards[m.index(key)].Lock()
}

// Unlock releases the lock for the given key
func (m *KeyMutex) Unlock(key string) {
	m.shards[m.index(key)].Unlock()
}

func (m *KeyMutex) index(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(m.shards)))
}
