package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/apicourse/demo-api/internal/core/domain"
)

// RequireActive rejects deactivated accounts. It runs after Auth: the token
// has already been verified and the identity resolved, so this is a business
// gate on top of authentication, not part of it.
func RequireActive() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(IdentityKey).(*domain.Identity)
			if identity == nil {
				return domain.ErrInvalidCredentials
			}
			if identity.Disabled {
				return domain.ErrUserDeactivated
			}
			return next(c)
		}
	}
}
