package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for memoizing converted text
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a line of Betacode
func Key(line string) string {
	hash := sha256.Sum256([]byte(line))
	return "betacode:v1:" + hex.EncodeToString(hash[:])
}
