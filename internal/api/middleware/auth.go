package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/apicourse/demo-api/internal/api/metrics"
	"github.com/apicourse/demo-api/internal/core/domain"
	"github.com/apicourse/demo-api/internal/core/ports"
)

// IdentityKey is the echo.Context key under which Auth stores the resolved
// caller identity.
const IdentityKey = "identity"

// Auth extracts the bearer token, resolves it to an identity and injects it
// into the request context. Failures are returned as domain errors and only
// translated to HTTP status codes by the central error handler.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				metrics.TokenResolutionsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidCredentials
			}

			identity, err := tokens.Resolve(c.Request().Context(), token)
			if err != nil {
				metrics.TokenResolutionsTotal.WithLabelValues("invalid").Inc()
				return err
			}
			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
