package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface the upstream clients cache responses behind.
// Backends are the in-memory store and Redis; both are safe for
// concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a namespaced cache key from an upstream request identity
// (URL plus query parameters).
func Key(raw string) string {
	hash := sha256.Sum256([]byte(raw))
	return "astroguard:v1:" + hex.EncodeToString(hash[:])
}
