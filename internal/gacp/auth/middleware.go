package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// claimsContextKey is the echo context key the middleware stores Claims under.
const claimsContextKey = "auth_claims"

// Middleware validates the Authorization bearer token and stores the claims
// on the echo context for handlers and the permission middleware.
func Middleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "Bearer token required"},
				})
			}

			claims, err := ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "Invalid or expired token"},
				})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// FromContext returns the authenticated claims, or nil when the request did
// not pass through Middleware.
func FromContext(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}

// SetClaims stores claims on the context directly. Test harnesses use this to
// skip token minting.
func SetClaims(c echo.Context, claims *Claims) {
	c.Set(claimsContextKey, claims)
}
