package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/apicourse/demo-api/internal/core/domain"
)

type stubTokenService struct {
	resolveFn func(ctx context.Context, token string) (*domain.Identity, error)
}

func (s *stubTokenService) Issue(string, time.Duration) (string, error) {
	return "", nil
}

func (s *stubTokenService) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	return s.resolveFn(ctx, token)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{
		resolveFn: func(_ context.Context, token string) (*domain.Identity, error) {
			if token != "tok123" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.Identity{Username: "johndoe"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		identity, _ := c.Get(IdentityKey).(*domain.Identity)
		if identity == nil || identity.Username != "johndoe" {
			t.Fatalf("identity not injected: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{
		resolveFn: func(context.Context, string) (*domain.Identity, error) {
			t.Fatalf("resolver should not run without a header")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{
		resolveFn: func(context.Context, string) (*domain.Identity, error) {
			t.Fatalf("resolver should not run for a malformed header")
			return nil, nil
		},
	}

	for _, header := range []string{"tok123", "Basic dXNlcjpwYXNz", "Bearer ", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		c := e.NewContext(req, httptest.NewRecorder())

		handler := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("should not reach next for header %q", header)
			return nil
		})

		if err := handler(c); err != domain.ErrInvalidCredentials {
			t.Fatalf("header %q: expected ErrInvalidCredentials, got %v", header, err)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{
		resolveFn: func(context.Context, string) (*domain.Identity, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{
		resolveFn: func(_ context.Context, token string) (*domain.Identity, error) {
			return &domain.Identity{Username: "johndoe"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer tok123")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(tokens)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}
