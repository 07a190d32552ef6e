package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores raw API response bodies keyed by request URL
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a request URL
func Key(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return "launchwatch:v1:" + hex.EncodeToString(hash[:])
}

// Nop is a Cache that never stores anything. Used when caching is disabled.
type Nop struct{}

func (Nop) Get(string) ([]byte, bool)               { return nil, false }
func (Nop) Set(string, []byte, time.Duration) error { return nil }
func (Nop) Delete(string) error                     { return nil }
func (Nop) Clear() error                            { return nil }
