// Package config loads the optional YAML settings file for the shell.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Neev4n/myshell-go/internal/logger"
	"github.com/Neev4n/myshell-go/pkg/builtin"
)

// Config represents the shell configuration
type Config struct {
	Prompt  PromptConfig  `yaml:"prompt"`
	Cat     CatConfig     `yaml:"cat"`
	Logging LoggingConfig `yaml:"logging"`
}

type PromptConfig struct {
	Name  string `yaml:"name"`
	Color bool   `yaml:"color"`
}

type CatConfig struct {
	ChunkSize    int  `yaml:"chunk_size"`
	ChunkNewline bool `yaml:"chunk_newline"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			Name:  "myshell",
			Color: true,
		},
		Cat: CatConfig{
			ChunkSize:    builtin.ChunkSize,
			ChunkNewline: true,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// GetConfigDir returns the config directory path
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "myshell")
	}
	return filepath.Join(home, ".config", "myshell")
}

// GetConfigPath returns the full path to the default config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load reads configuration from path. With an empty path the default location is
// tried and silently skipped when absent.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = GetConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables if present
	if level := os.Getenv("MYSHELL_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv("MYSHELL_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Prompt.Name == "" {
		return fmt.Errorf("prompt.name is required")
	}
	if c.Cat.ChunkSize <= 0 {
		return fmt.Errorf("cat.chunk_size must be positive, got %d", c.Cat.ChunkSize)
	}
	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// BuiltinOptions derives the built-in operation settings.
func (c *Config) BuiltinOptions() builtin.Options {
	opts := builtin.DefaultOptions()
	opts.ChunkSize = c.Cat.ChunkSize
	opts.ChunkNewline = c.Cat.ChunkNewline
	return opts
}
