package middleware

// identity.go holds helpers shared across middleware files for naming the
// caller of a request: either the authenticated photographer id or the
// client IP on the public access-code surface.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// callerID returns a stable identifier for the current request's caller.
// Authenticated requests are keyed by photographer id; anonymous gallery
// visitors fall back to their IP so the rate limiter buckets per client.
func callerID(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		if id, ok := v.(uint64); ok && id != 0 {
			return "u" + strconv.FormatUint(id, 10)
		}
	}
	if ip := c.RealIP(); ip != "" {
		return "ip:" + ip
	}
	return "anon"
}
