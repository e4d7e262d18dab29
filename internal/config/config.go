// Package config loads configuration from environment variables for the
// three binaries. Secrets (admin credential, bot tokens, operator channel)
// are required and have no embedded defaults: a process missing one refuses
// to start instead of silently running with a baked-in literal.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// MinAdminPasswordLength rejects obviously unusable admin passwords.
const MinAdminPasswordLength = 8

// Config holds the API backend configuration.
type Config struct {
	ServerHost string `env:"CLINIC_SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort int    `env:"CLINIC_SERVER_PORT" envDefault:"3001"`
	Env        string `env:"CLINIC_ENV" envDefault:"development"`
	LogLevel   string `env:"CLINIC_LOG_LEVEL" envDefault:"info"`

	// DatabaseURL may be empty: the site then runs on fallback content only.
	DatabaseURL string `env:"CLINIC_DATABASE_URL"`

	// CORSOrigins is the browser origin allow-list.
	CORSOrigins []string `env:"CLINIC_CORS_ORIGINS" envDefault:"https://rus-production.up.railway.app,http://localhost:4200"`

	// Admin credential for the panel login and the seeded database row.
	AdminEmail    string `env:"CLINIC_ADMIN_EMAIL,required,notEmpty"`
	AdminPassword string `env:"CLINIC_ADMIN_PASSWORD,required,notEmpty"`
	AdminName     string `env:"CLINIC_ADMIN_NAME" envDefault:"Admin User"`

	// Cache configuration for public list responses.
	RedisURL    string `env:"CLINIC_REDIS_URL"` // Optional; memory cache when empty
	CachePrefix string `env:"CLINIC_CACHE_PREFIX" envDefault:"clinic:"`
	CacheTTL    int    `env:"CLINIC_CACHE_TTL" envDefault:"60"` // Seconds
}

// IsDevelopment returns true outside production mode.
func (c Config) IsDevelopment() bool {
	return c.Env != "production"
}

// ServerAddr returns the listen address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses backend environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.AdminPassword) < MinAdminPasswordLength {
		return nil, fmt.Errorf("CLINIC_ADMIN_PASSWORD must be at least %d characters, got %d",
			MinAdminPasswordLength, len(cfg.AdminPassword))
	}
	if !strings.Contains(cfg.AdminEmail, "@") {
		return nil, fmt.Errorf("CLINIC_ADMIN_EMAIL %q is not an email address", cfg.AdminEmail)
	}

	return cfg, nil
}

// ProxyConfig holds the static/proxy server configuration.
type ProxyConfig struct {
	ServerHost string `env:"CLINIC_PROXY_HOST" envDefault:"0.0.0.0"`
	ServerPort int    `env:"CLINIC_PROXY_PORT" envDefault:"3000"`

	// BackendURL is the origin /api/* requests are forwarded to.
	BackendURL string `env:"CLINIC_BACKEND_URL" envDefault:"http://localhost:3001"`

	// DistDir is the compiled single-page app bundle.
	DistDir string `env:"CLINIC_DIST_DIR" envDefault:"./dist/clinic-site"`
}

// ServerAddr returns the listen address in host:port format.
func (c ProxyConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// LoadProxy parses proxy server environment variables.
func LoadProxy() (*ProxyConfig, error) {
	cfg := &ProxyConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing proxy config: %w", err)
	}
	return cfg, nil
}

// BotConfig holds the Telegram bot configuration. All three values are
// required; the original shipped with token literals in source, which is
// exactly what this refuses to repeat.
type BotConfig struct {
	PatientBotToken  string `env:"CLINIC_PATIENT_BOT_TOKEN,required,notEmpty"`
	OperatorBotToken string `env:"CLINIC_OPERATOR_BOT_TOKEN,required,notEmpty"`
	OperatorChatID   int64  `env:"CLINIC_OPERATOR_CHAT_ID,required,notEmpty"`

	// SiteURL is linked from canned bot replies.
	SiteURL string `env:"CLINIC_SITE_URL" envDefault:"https://rus-production.up.railway.app"`
}

// LoadBots parses bot environment variables.
func LoadBots() (*BotConfig, error) {
	cfg := &BotConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing bot config: %w", err)
	}
	return cfg, nil
}
