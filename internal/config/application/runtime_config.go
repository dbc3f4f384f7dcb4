package application

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"blog-v0/internal/config/domain"
)

// Flags holds values given on the command line. Zero values mean "not set".
type Flags struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
	LogOutput   string
	ContentDir  string
	DevMode     bool
}

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// HTTP
	Port    string
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Storage
	DatabaseURL  string
	RedisAddr    string
	StoreTimeout time.Duration

	// Site
	SiteName   string
	BaseURL    string
	OwnDomains []string
	ContentDir string

	// +1 endpoint limits; PlusOneRPS <= 0 disables limiting
	PlusOneRPS   float64
	PlusOneBurst int

	// MetricsToken protects /metrics with a bearer token when set
	MetricsToken string

	// Telemetry
	OTLPEndpoint   string
	SamplerRatio   float64
	ServiceName    string
	ServiceVersion string
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults
func LoadRuntimeConfig(flags Flags) *RuntimeConfig {
	cfg := &RuntimeConfig{
		Port:           getValue(flags.Port, "BLOG_PORT", "8080"),
		DevMode:        flags.DevMode || getBoolEnv("BLOG_DEV_MODE", false),
		LogLevel:       getValue(flags.LogLevel, "BLOG_LOG_LEVEL", "INFO"),
		LogFormat:      getValue(flags.LogFormat, "BLOG_LOG_FORMAT", "text"),
		LogOutput:      getValue(flags.LogOutput, "BLOG_LOG_OUTPUT", "stdout"),
		DatabaseURL:    getValue(flags.DatabaseURL, "DATABASE_URL", "file:blog.db"),
		RedisAddr:      getValue("", "BLOG_REDIS_ADDR", ""),
		StoreTimeout:   getDurationEnv("BLOG_STORE_TIMEOUT", 0),
		SiteName:       getValue("", "BLOG_SITE_NAME", "Victor Bona Blog"),
		BaseURL:        strings.TrimSuffix(getValue("", "BLOG_BASE_URL", "https://blog.victorbona.dev"), "/"),
		OwnDomains:     getListEnv("BLOG_OWN_DOMAINS", []string{"blog.victorbona.dev", "victorbona.dev"}),
		ContentDir:     getValue(flags.ContentDir, "BLOG_CONTENT_DIR", "content"),
		PlusOneRPS:     getFloatEnv("BLOG_PLUSONE_RPS", 0),
		PlusOneBurst:   getIntEnv("BLOG_PLUSONE_BURST", 5),
		MetricsToken:   getValue("", "BLOG_METRICS_TOKEN", ""),
		OTLPEndpoint:   strings.TrimSuffix(getValue("", "OTEL_EXPORTER_OTLP_ENDPOINT", ""), "/"),
		SamplerRatio:   getFloatEnv("OTEL_TRACES_SAMPLER_ARG", 0.1),
		ServiceName:    getValue("", "OTEL_SERVICE_NAME", "victorbona-blog"),
		ServiceVersion: getValue("", "OTEL_SERVICE_VERSION", "unknown"),
	}

	return cfg
}

// Site returns the site settings used by the content pages and referrer classification
func (c *RuntimeConfig) Site() domain.SiteConfig {
	return domain.SiteConfig{
		Name:       c.SiteName,
		BaseURL:    c.BaseURL,
		OwnDomains: c.OwnDomains,
	}
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getDurationEnv accepts Go durations ("750ms", "2s")
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated variable, dropping empty items
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// Validate checks that the configuration is usable
func (c *RuntimeConfig) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		return &ConfigError{Field: "port", Message: fmt.Sprintf("invalid port %q", c.Port)}
	}
	if c.DatabaseURL == "" && c.RedisAddr == "" {
		return &ConfigError{Field: "database-url", Message: "a database URL or a redis address is required"}
	}
	if c.SamplerRatio < 0 || c.SamplerRatio > 1 {
		return &ConfigError{Field: "OTEL_TRACES_SAMPLER_ARG", Message: "sampler ratio must be between 0 and 1"}
	}
	if c.PlusOneRPS > 0 && c.PlusOneBurst <= 0 {
		return &ConfigError{Field: "BLOG_PLUSONE_BURST", Message: "burst must be positive when rate limiting is enabled"}
	}
	if c.StoreTimeout < 0 {
		return &ConfigError{Field: "BLOG_STORE_TIMEOUT", Message: "store timeout cannot be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
