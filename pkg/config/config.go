package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`

	// Redis backs sessions and the code image cache.
	RedisURL string `conf:"default:redis://localhost:6379,env:REDIS_URL"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Session
	SessionAuthKey       string `conf:"default:dev-auth-key-32-bytes-long!!!,env:SESSION_AUTH_KEY"`
	SessionEncryptionKey string `conf:"default:dev-encryption-key-32-bytes!!,env:SESSION_ENCRYPTION_KEY"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Label options. LabelCodeTypes is an ordered list separated by | or ,
	// e.g. "barcode|qr" or "qr|barcode|both".
	LabelCodeTypes  string `conf:"default:barcode|qr|both,env:LABEL_CODE_TYPES"`
	DefaultCodeType string `conf:"default:barcode,env:LABEL_DEFAULT_CODE_TYPE"`

	// Currency used for every label price.
	CurrencyCode   string `conf:"default:USD,env:CURRENCY_CODE"`
	CurrencyLocale string `conf:"default:en-US,env:CURRENCY_LOCALE"`
	CurrencySymbol string `conf:"default:$,env:CURRENCY_SYMBOL"`

	// Rendered barcode/QR PNGs are cached in Redis by SKU.
	CodeImageCacheTTL time.Duration `conf:"default:24h,env:CODE_IMAGE_CACHE_TTL"`

	// PDF printing through headless Chrome. ChromeBin empty lets rod locate or download a browser.
	PrintEnabled bool   `conf:"default:false,env:PRINT_ENABLED"`
	ChromeBin    string `conf:"env:CHROME_BIN"`

	// Observability
	ServiceName    string `conf:"default:skulabel,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	// OtelEndpoint is host:port or a full URL; empty keeps traces and metrics local.
	OtelEndpoint string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN    string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	if _, err := LoadInto(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadInto is Load for a caller-defined struct, typically one embedding Config
// next to command-specific flags. On --help it returns the usage text together
// with conf.ErrHelpWanted.
func LoadInto(v any) (string, error) {
	_ = godotenv.Load()
	help, err := conf.Parse("", v)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return help, err
		}
		return "", fmt.Errorf("failed to parse config: %w", err)
	}
	return "", nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if len(cfg.SessionAuthKey) < 32 {
		errs = append(errs, fmt.Sprintf(
			"SESSION_AUTH_KEY must be at least 32 bytes (got %d); generate with: openssl rand -base64 32",
			len(cfg.SessionAuthKey),
		))
	}

	if len(cfg.SessionEncryptionKey) < 16 {
		errs = append(errs, fmt.Sprintf(
			"SESSION_ENCRYPTION_KEY must be at least 16 bytes (got %d); generate with: openssl rand -base64 16",
			len(cfg.SessionEncryptionKey),
		))
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if cfg.CodeImageCacheTTL <= 0 {
		errs = append(errs, "CODE_IMAGE_CACHE_TTL must be positive")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
