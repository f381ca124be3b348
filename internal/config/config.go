package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environments understood by the access policy.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	App    AppConfig    `mapstructure:"app"`
	DB     DBConfig     `mapstructure:"db"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port      string    `mapstructure:"port"`
	PublicURL string    `mapstructure:"public_url"`
	TLS       TLSConfig `mapstructure:"tls"`
}

// TLSConfig holds TLS-specific configuration.
type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
}

// AppConfig holds deployment-level switches.
type AppConfig struct {
	Env string `mapstructure:"env"` // "development" or "production"
	// ExposeStoreErrors passes raw store fault messages through to 500 responses.
	ExposeStoreErrors bool `mapstructure:"expose_store_errors"`
}

// DBConfig holds database-specific configuration.
type DBConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite3" or "mysql"
	DSN    string `mapstructure:"dsn"`
}

// CacheConfig holds the response cache configuration.
type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	FilePath   string `mapstructure:"file_path"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // e.g., "json", "console"
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.public_url", "http://localhost:8080")
	v.SetDefault("server.tls.enabled", false)
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("app.expose_store_errors", true)
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "cms.db")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.file_path", "cache.db")
	v.SetDefault("cache.ttl_seconds", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/go-cms-app/")
	v.AddConfigPath("$HOME/.go-cms-app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	v.SetEnvPrefix("CMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
