package middleware // reusable HTTP middleware for the API surface

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the photographer's identity into the request context.  The
// provided secret must match the one used when issuing tokens.  Handlers
// behind this middleware read the identity via `c.Get("user_id")`,
// `c.Get("email")` and `c.Get("role")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid Authorization header starts with "Bearer " followed
			// by the JWT.  Anything else is rejected up front.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": echo.Map{"code": "TOKEN_REQUIRED", "message": "missing bearer token"},
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret.  The key callback also
			// pins the signing method; tokens signed any other way are
			// treated as invalid.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": echo.Map{"code": "TOKEN_INVALID", "message": "invalid or expired token"},
				})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": echo.Map{"code": "TOKEN_INVALID", "message": "invalid claims"},
				})
			}

			// The subject is the photographer id.  JSON numbers decode
			// as float64, so convert before storing.
			if sub, ok := claims["sub"].(float64); ok {
				c.Set("user_id", uint64(sub))
			}
			if email, ok := claims["email"].(string); ok {
				c.Set("email", email)
			}
			c.Set("role", claims["role"])
			return next(c)
		}
	}
}
