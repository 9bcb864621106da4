// Package config provides server configuration with multi-source priority.
//
// Sources (highest to lowest):
//  1. Environment variables (PHALCON_MCP_*)
//  2. Config file (~/.phalcon-mcp/config.yaml or ./config.yaml)
//  3. Defaults
//
// The configuration is loaded once at startup and validated fail-fast;
// nothing re-reads it per tool call.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"phalcon-mcp/internal/log"
	"phalcon-mcp/internal/phalcon"
)

var (
	// ErrMissingBinary indicates the phalcon executable name is empty.
	ErrMissingBinary = errors.New("phalcon binary name is empty")

	// ErrInvalidTimeout indicates a non-positive command timeout.
	ErrInvalidTimeout = errors.New("invalid command timeout")

	// ErrInvalidGrace indicates a non-positive serve grace period.
	ErrInvalidGrace = errors.New("invalid serve grace period")

	// ErrInvalidWorkDir indicates the configured working directory does
	// not exist or is not a directory.
	ErrInvalidWorkDir = errors.New("invalid working directory")

	// ErrInvalidLogLevel indicates an unrecognized log level string.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// LogConfig controls the slog setup.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Config stores the server configuration.
type Config struct {
	// PhalconBinary is the external executable name or path. Defaults to
	// the platform-appropriate name ("phalcon" / "phalcon.bat").
	PhalconBinary string `mapstructure:"phalcon_binary"`

	// WorkingDir, when set, is the working directory for every phalcon
	// invocation. Empty means inherit the server's working directory.
	WorkingDir string `mapstructure:"working_dir"`

	// CommandTimeoutSeconds bounds ordinary phalcon commands.
	CommandTimeoutSeconds int `mapstructure:"command_timeout_seconds"`

	// ServeGraceSeconds is how long phalcon_serve waits for an immediate
	// startup failure before reporting the server as running.
	ServeGraceSeconds int `mapstructure:"serve_grace_seconds"`

	Log LogConfig `mapstructure:"log"`
}

// Load reads configuration from defaults, the config file, and environment
// variables, then validates it.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".phalcon-mcp"))
	}
	viper.AddConfigPath(".")

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("phalcon_binary", phalcon.DefaultProgram())
	viper.SetDefault("working_dir", "")
	viper.SetDefault("command_timeout_seconds", 120)
	viper.SetDefault("serve_grace_seconds", 3)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)
}

// bindEnvVariables binds the PHALCON_MCP_* overrides explicitly.
func bindEnvVariables() {
	// Hardcoded keys cannot fail to bind; a panic here is a bug.
	mustBind := func(key, envVar string) {
		if err := viper.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("phalcon_binary", "PHALCON_MCP_BINARY")
	mustBind("working_dir", "PHALCON_MCP_WORKDIR")
	mustBind("command_timeout_seconds", "PHALCON_MCP_TIMEOUT_SECONDS")
	mustBind("log.level", "PHALCON_MCP_LOG_LEVEL")
}

// Validate checks the configuration and fails fast on the first problem.
func (c *Config) Validate() error {
	if c.PhalconBinary == "" {
		return ErrMissingBinary
	}
	if c.CommandTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: %d seconds", ErrInvalidTimeout, c.CommandTimeoutSeconds)
	}
	if c.ServeGraceSeconds <= 0 {
		return fmt.Errorf("%w: %d seconds", ErrInvalidGrace, c.ServeGraceSeconds)
	}
	if c.WorkingDir != "" {
		info, err := os.Stat(c.WorkingDir)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidWorkDir, c.WorkingDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrInvalidWorkDir, c.WorkingDir)
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogLevel, err)
	}
	return nil
}

// CommandTimeout returns the command timeout as a duration.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

// ServeGrace returns the serve grace period as a duration.
func (c *Config) ServeGrace() time.Duration {
	return time.Duration(c.ServeGraceSeconds) * time.Second
}

// LogLevel returns the parsed slog level. Validate has already checked it.
func (c *Config) LogLevel() slog.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}
