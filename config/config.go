// Package config loads application configuration from environment
// variables and an optional config file. Environment variables take
// precedence over file values.
package config

// Config holds all application configuration, organized into logical
// groups.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// ServerConfig contains server-related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

// ValidationConfig contains validation engine settings.
type ValidationConfig struct {
	// Environment is the deployment environment name. The value
	// "production" disables response validation.
	Environment string `mapstructure:"environment"`

	// RedactValues omits offending values from validation issues, for
	// deployments where request payloads may carry secrets.
	RedactValues bool `mapstructure:"redact_values"`

	// SchemaDir is a directory of YAML schema documents registered at
	// startup. Empty means no documents are preloaded.
	SchemaDir string `mapstructure:"schema_dir"`

	// NormalizeNames applies title-casing normalization when deriving
	// registry names from document titles.
	NormalizeNames bool `mapstructure:"normalize_names"`
}

// IsProduction reports whether the deployment environment is
// production.
func (c *Config) IsProduction() bool {
	return c.Validation.Environment == "production"
}
