package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load reads configuration from config.yaml (if present) and environment
// variables, on top of the defaults.
func (l *Loader) Load() (*Config, error) {
	l.setupViper()

	if err := l.v.ReadInConfig(); err != nil {
		// Missing config.yaml is fine, env vars and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The provider auth scheme follows the deployment environment unless
	// configured explicitly.
	if config.Coingecko.Environment == "" {
		config.Coingecko.Environment = config.App.Environment
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (l *Loader) setupViper() {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/truther")

	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("TRUTHER")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.bindEnvVars()
}

// bindEnvVars maps the historical environment variable names onto config
// keys so existing deployments keep working.
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"app.environment":       "NODE_ENV",
		"server.port":           "PORT",
		"mongo.uri":             "MONGO_URI",
		"mongo.database":        "MONGO_DATABASE",
		"coingecko.base_url":    "COINGECKO_BASE_URL",
		"coingecko.api_key":     "COINGECKO_API_KEY",
		"coingecko.environment": "COINGECKO_ENVIRONMENT",
		"coingecko.timeout":     "COINGECKO_TIMEOUT",
		"coingecko.max_retries": "COINGECKO_MAX_RETRIES",
		"logging.level":         "LOG_LEVEL",
		"logging.format":        "LOG_FORMAT",
		"refresh.enabled":       "REFRESH_ENABLED",
		"refresh.interval":      "REFRESH_INTERVAL",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, envVar)
	}
}

// Load is a convenience wrapper around a fresh Loader.
func Load() (*Config, error) {
	return NewLoader().Load()
}
