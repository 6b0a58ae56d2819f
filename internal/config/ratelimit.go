package config

// Rate limit settings for the unauthenticated surface.  Access codes are
// only 6 characters, so the public gallery routes are an enumeration
// target; the token bucket keeps guessing impractically slow without
// bothering legitimate clients browsing their own gallery.

import (
	"time"
)

// RateLimitConfig drives the Redis token-bucket limiter.
// Fields:
//   Enabled  – master switch.
//   Capacity – bucket size (burst allowance per client IP).
//   Refill   – tokens added back per interval.
//   Interval – refill period.
//   KeyTTL   – idle expiry for per-IP bucket keys in Redis.
type RateLimitConfig struct {
	Enabled  bool
	Capacity int
	Refill   int
	Interval time.Duration
	KeyTTL   time.Duration
}

// LoadRateLimitConfig reads limiter settings from the environment.
// Defaults allow 30 requests of burst with 10 tokens refilled per second.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:  true,
		Capacity: 30,
		Refill:   10,
		Interval: time.Second,
		KeyTTL:   5 * time.Minute,
	}
	if v := getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.Enabled = v == "true" || v == "1"
	}
	if v := getenv("RATE_LIMIT_CAPACITY"); v != "" {
		cfg.Capacity = atoi(v, cfg.Capacity)
	}
	if v := getenv("RATE_LIMIT_REFILL"); v != "" {
		cfg.Refill = atoi(v, cfg.Refill)
	}
	if v := getenv("RATE_LIMIT_INTERVAL"); v != "" {
		cfg.Interval = parseDur(v, cfg.Interval)
	}
	if v := getenv("RATE_LIMIT_KEY_TTL"); v != "" {
		cfg.KeyTTL = parseDur(v, cfg.KeyTTL)
	}
	return cfg
}
