package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/apicourse/demo-api/internal/api/middleware"
	"github.com/apicourse/demo-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// absence means the route was wired without the middleware; treat that as an
// authentication failure rather than panicking.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if identity == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return identity, nil
}
