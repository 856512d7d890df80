// Package cache stores per-file scan results between runs.
//
// Entries are keyed by a hash of the scanned content, so an unchanged file is
// never parsed twice and an edited file is always rescanned. The file-backed
// implementation lives in the user cache directory; NullCache disables caching
// entirely.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ScanTTL is how long a scan result stays valid. Keys are content-addressed,
// so expiry only bounds disk usage.
const ScanTTL = 30 * 24 * time.Hour

// scanSchema is bumped whenever the cached scan format changes.
const scanSchema = 1

// ScanKey returns the cache key for the scan result of a file in language
// whose content hashes to contentHash.
func ScanKey(language, contentHash string) string {
	return hashKey("scan", scanSchema, language, contentHash)
}
