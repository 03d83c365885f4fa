package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/apicourse/demo-api/internal/api/handler"
	"github.com/apicourse/demo-api/internal/api/middleware"
	"github.com/apicourse/demo-api/internal/core/service"
	"github.com/apicourse/demo-api/internal/infrastructure/config"
	"github.com/apicourse/demo-api/internal/infrastructure/store/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, directory *memory.UserDirectory, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("demoapi"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(directory, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(directory, tokenService, cfg.Auth.LoginTokenTTL)
	authHandler := handler.NewAuthHandler(authService)
	demoHandler := handler.NewDemoHandler()
	authenticated := middleware.Auth(tokenService)
	active := middleware.RequireActive()

	// --- Auth routes ---
	e.POST("/token", authHandler.Token)
	e.GET("/myuser", authHandler.Me, authenticated, active)

	// --- Tutorial routes ---
	e.GET("/", demoHandler.Root)
	e.GET("/items/:id", demoHandler.GetItem)
	e.GET("/enum/:model", demoHandler.GetEnum)
	e.GET("/param", demoHandler.Params)

	// --- Operational routes ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
