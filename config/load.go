package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from an optional schwag.yaml in the working
// directory and from environment variables with the SCHWAG_ prefix.
// Environment variables take precedence; nested keys use underscores
// (e.g. SCHWAG_VALIDATION_ENVIRONMENT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("validation.environment", "development")
	v.SetDefault("validation.redact_values", false)
	v.SetDefault("validation.schema_dir", "")
	v.SetDefault("validation.normalize_names", true)

	v.SetConfigName("schwag")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SCHWAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateConfig rejects values that would misconfigure the service at
// startup rather than at first request.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("config: server port %d out of range", cfg.Server.Port)
	}
	switch cfg.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", cfg.Server.LogLevel)
	}
	return nil
}
