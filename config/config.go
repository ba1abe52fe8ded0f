package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Recurring task engine specifics
	Storage        StorageConfig
	Calendar       CalendarConfig
	GoogleCalendar GoogleCalendarConfig
	Interpreter    InterpreterConfig

	// Caller-facing security
	Security SecurityConfig

	Tracing TracingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig configures the embedded badger store.
type StorageConfig struct {
	Path           string
	InMemory       bool
	SyncWrites     bool
	GCInterval     time.Duration
	GCDiscardRatio float64
}

// CalendarConfig sets the timezone calendar days are resolved in.
type CalendarConfig struct {
	Timezone string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type InterpreterConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

type SecurityConfig struct {
	APIKey          string
	RateLimitPerMin int
}

// TracingConfig selects the span exporter: "stdout" or "none".
type TracingConfig struct {
	Exporter string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.InMemory = viper.GetBool("storage.in_memory")
	cfg.Storage.SyncWrites = viper.GetBool("storage.sync_writes")
	cfg.Storage.GCInterval = viper.GetDuration("storage.gc_interval")
	cfg.Storage.GCDiscardRatio = viper.GetFloat64("storage.gc_discard_ratio")

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Interpreter
	cfg.Interpreter.CacheSize = viper.GetInt("interpreter.cache_size")
	cfg.Interpreter.CacheTTL = viper.GetDuration("interpreter.cache_ttl")

	// Security
	cfg.Security.APIKey = viper.GetString("security.api_key")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.Security.APIKey = apiKey
	}
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")

	// Tracing
	cfg.Tracing.Exporter = viper.GetString("tracing.exporter")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required unless storage.in_memory is set")
	}
	if c.Storage.GCDiscardRatio < 0 || c.Storage.GCDiscardRatio >= 1 {
		return fmt.Errorf("storage.gc_discard_ratio must be in [0, 1)")
	}
	if c.Security.RateLimitPerMin < 0 {
		return fmt.Errorf("security.rate_limit_per_min must not be negative")
	}
	switch c.Tracing.Exporter {
	case "", "none", "stdout":
	default:
		return fmt.Errorf("tracing.exporter must be none or stdout, got %q", c.Tracing.Exporter)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.path", "./data/badger")
	viper.SetDefault("storage.in_memory", false)
	viper.SetDefault("storage.sync_writes", true)
	viper.SetDefault("storage.gc_interval", "5m")
	viper.SetDefault("storage.gc_discard_ratio", 0.5)

	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("interpreter.cache_size", 1024)
	viper.SetDefault("interpreter.cache_ttl", "10m")
	viper.SetDefault("security.rate_limit_per_min", 120)
	viper.SetDefault("tracing.exporter", "none")
}
