package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the compiler CLI
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Override OverrideConfig `mapstructure:"override"`
	Log      LogConfig      `mapstructure:"log"`
}

// OutputConfig holds generated-code output settings
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Package string `mapstructure:"package"` // defaults to the IDL program name
}

// OverrideConfig holds override discovery settings
type OverrideConfig struct {
	// Dir is the directory searched for overrides/<name>.json and
	// idl-overrides.json. Defaults to the IDL file's directory.
	Dir string `mapstructure:"dir"`

	// File is an explicit override file; when set, discovery is skipped.
	File string `mapstructure:"file"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: "./generated",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName(".idlgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Environment variables
	viper.SetEnvPrefix("IDLGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
