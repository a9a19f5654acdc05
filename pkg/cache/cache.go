// Package cache stores rendered output keyed by its inputs.
//
// Three backends implement [Cache]: [FileCache] for the CLI (entries live
// under the user cache directory between runs), [MemoryCache] for a
// single server process and [RedisCache] for servers sharing results.
// [NullCache] disables caching.
//
// Keys are built with [Key], which hashes every part so arbitrary query
// strings and SVG documents map onto fixed-length keys.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte store with per-entry expiry. A zero ttl never expires.
// Get reports a miss with ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key returns prefix:sha256(parts), where parts are JSON-encoded.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
