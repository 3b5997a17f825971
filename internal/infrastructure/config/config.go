package config

import (
	"time"
)

// Config is the complete application configuration.
type Config struct {
	App       AppConfig       `yaml:"app" mapstructure:"app"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Mongo     MongoConfig     `yaml:"mongo" mapstructure:"mongo"`
	Coingecko CoingeckoConfig `yaml:"coingecko" mapstructure:"coingecko"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
	Refresh   RefreshConfig   `yaml:"refresh" mapstructure:"refresh"`
}

// AppConfig contains process-level settings.
type AppConfig struct {
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// MongoConfig contains document-store connection configuration.
type MongoConfig struct {
	URI      string `yaml:"uri" mapstructure:"uri"`
	Database string `yaml:"database" mapstructure:"database"`
}

// CoingeckoConfig contains market-data provider configuration. Environment
// selects which API key header the provider client sends.
type CoingeckoConfig struct {
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxRetries  int           `yaml:"max_retries" mapstructure:"max_retries"`
}

// LoggingConfig contains logging system configuration.
type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Format     string `yaml:"format" mapstructure:"format"`
	OutputFile string `yaml:"output_file" mapstructure:"output_file"`
}

// RefreshConfig controls the background snapshot refresher.
type RefreshConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	Interval    time.Duration `yaml:"interval" mapstructure:"interval"`
	Concurrency int           `yaml:"concurrency" mapstructure:"concurrency"`
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: "development",
		},
		Server: ServerConfig{
			Port:            3000,
			ShutdownTimeout: 30 * time.Second,
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost/truther-api",
			Database: "truther-api",
		},
		Coingecko: CoingeckoConfig{
			BaseURL:     "https://api.coingecko.com/api/v3",
			APIKey:      "",
			Environment: "", // falls back to app.environment when empty
			Timeout:     30 * time.Second,
			MaxRetries:  0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Refresh: RefreshConfig{
			Enabled:     false,
			Interval:    5 * time.Minute,
			Concurrency: 4,
		},
	}
}
