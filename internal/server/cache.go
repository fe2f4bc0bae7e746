package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"homecast/internal/domain"
)

// ResultCache stores serialized projection results keyed by request digest.
// The projection is pure, so a hit is always exact; entries expire only to
// bound memory.
type ResultCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// cacheKey derives a deterministic digest for a request. Inputs are value
// objects, so JSON encoding is stable enough for a cache key.
func cacheKey(in *domain.AffordabilityInput) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "homecast:project:" + hex.EncodeToString(sum[:]), nil
}

type memoryCacheEntry struct {
	value   string
	expires time.Time
}

// MemoryCache is the in-process ResultCache used when no Redis address is
// configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an in-memory cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryCacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key if present and unexpired.
func (mc *MemoryCache) Get(key string) (string, bool) {
	mc.mu.RLock()
	entry, ok := mc.entries[key]
	mc.mu.RUnlock()
	if !ok || mc.now().After(entry.expires) {
		return "", false
	}
	return entry.value, true
}

// Set stores a value under key.
func (mc *MemoryCache) Set(key string, value string) error {
	mc.mu.Lock()
	mc.entries[key] = memoryCacheEntry{value: value, expires: mc.now().Add(mc.ttl)}
	mc.mu.Unlock()
	return nil
}
