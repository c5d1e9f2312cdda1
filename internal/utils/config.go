package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat    string `yaml:"log_format" mapstructure:"log_format"`
	OutputFormat string `yaml:"output_format" mapstructure:"output_format"`
}

// LoadDefaultConfig loads configuration from standard locations and
// environment variables.
func LoadDefaultConfig() (*Config, error) {
	return loadConfig("")
}

// LoadConfigFromFile loads configuration from the given file, layered over
// defaults and environment variables.
func LoadConfigFromFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is empty")
	}
	return loadConfig(path)
}

func loadConfig(path string) (*Config, error) {
	logger := NewDefaultLogger()
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("output_format", "text")

	v.SetEnvPrefix("ELF_INSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.elf-inspect")
		v.AddConfigPath("/etc/elf-inspect")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			logger.WithComponent("config").Debug("No config file found, using defaults and environment variables")
		} else {
			logger.WithComponent("config").Debugf("Loaded config from: %s", v.ConfigFileUsed())
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}

	switch strings.ToLower(c.OutputFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format: %s", c.OutputFormat)
	}
	return nil
}
