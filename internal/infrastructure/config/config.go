package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth AuthConfig
}

type AuthConfig struct {
	// JWTSecret signs access tokens. Fixed for the process lifetime; the
	// default exists for the tutorial only and must be overridden anywhere
	// real.
	JWTSecret string `env:"JWT_SECRET, default=dev-only-signing-secret"`
	// TokenTTL is the issuer default applied when a caller requests no
	// explicit lifetime.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=15m"`
	// LoginTokenTTL is the lifetime the login endpoint asks for.
	LoginTokenTTL time.Duration `env:"LOGIN_TOKEN_TTL, default=30m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
