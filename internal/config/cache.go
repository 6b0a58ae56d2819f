package config

// Settings for the public gallery response cache.  Galleries are read far
// more often than they change, so GET responses on the access-code routes
// are cached in Redis for a short TTL and invalidated whenever a client
// changes a selection.

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig describes the Redis response cache behaviour.
// Fields:
//   Enabled     – master switch for the cache middleware.
//   DefaultTTL  – expiry applied to cached gallery responses.
//   MaxBodySize – responses larger than this are never cached.
//   KeyPrefix   – namespace prefix for all cache keys.
type CacheConfig struct {
	Enabled     bool
	DefaultTTL  time.Duration
	MaxBodySize int
	KeyPrefix   string
}

// LoadCacheConfig reads cache settings from the environment with defaults
// suited to gallery payloads (photo lists run a few hundred KB at most).
func LoadCacheConfig() CacheConfig {
	cfg := CacheConfig{
		Enabled:     true,
		DefaultTTL:  30 * time.Second,
		MaxBodySize: 1 << 20, // 1 MiB
		KeyPrefix:   "photoflow:cache:",
	}
	if v := getenv("CACHE_ENABLED"); v != "" {
		cfg.Enabled = v == "true" || v == "1"
	}
	if v := getenv("CACHE_TTL"); v != "" {
		cfg.DefaultTTL = parseDur(v, cfg.DefaultTTL)
	}
	if v := getenv("CACHE_MAX_BODY"); v != "" {
		cfg.MaxBodySize = atoi(v, cfg.MaxBodySize)
	}
	if v := getenv("CACHE_KEY_PREFIX"); v != "" {
		cfg.KeyPrefix = v
	}
	return cfg
}

// getenv returns the trimmed value of an environment variable.
func getenv(key string) string {
	return os.Getenv(key)
}

// atoi converts s to an int, falling back to def on failure.
func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// parseDur parses a Go duration string ("30s", "1m"), falling back to def.
func parseDur(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}
