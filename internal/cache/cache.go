package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Cache defines the interface for caching operations
type Cache interface {
	// Get retrieves a value from the cache
	// Returns the value and a boolean indicating whether the key was found
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set adds a value to the cache with the specified expiration
	// If expiration is 0, the item never expires (but may be evicted)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)

	// Delete removes a key from the cache
	Delete(ctx context.Context, key string)

	// DeleteByPrefix removes all keys with the given prefix
	DeleteByPrefix(ctx context.Context, prefix string)

	// Flush removes all items from the cache
	Flush(ctx context.Context)
}

// Predefined cache key prefixes for different entity types
const (
	PrefixPlan         = "plan:v1:"
	PrefixSubscription = "subscription:v1:"
	PrefixProduct      = "product:v1:"
)

// GenerateKey builds a cache key from a prefix and parts, namespaced so a
// tenant never reads another tenant's entries.
func GenerateKey(prefix string, parts ...interface{}) string {
	strParts := make([]string, 0, len(parts))
	for _, part := range parts {
		strParts = append(strParts, fmt.Sprintf("%v", part))
	}
	return prefix + strings.Join(strParts, ":")
}
