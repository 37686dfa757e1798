// ============================================================================
// cmdcall - String-driven command dispatcher
// ============================================================================
//
// Package:     config
// Description: Read-only CLI configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CMDCALL_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Dispatch DispatchConfig `toml:"dispatch" yaml:"dispatch"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DispatchConfig holds registry and executor settings
type DispatchConfig struct {
	EnableAliases    bool              `toml:"enable_aliases" yaml:"enable_aliases"`
	StopOnError      bool              `toml:"stop_on_error" yaml:"stop_on_error"`
	AuditLog         bool              `toml:"audit_log" yaml:"audit_log"`
	ScriptTimeout    Duration          `toml:"script_timeout" yaml:"script_timeout"`
	MaxCommandLength int               `toml:"max_command_length" yaml:"max_command_length"` // 0 uses the engine default, negative disables
	Aliases          map[string]string `toml:"aliases" yaml:"aliases"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ccerror.Newf("config file not found: %s", path).
				WithCode(ccerror.CodeConfigError).
				WithDetail("path", path)
		}
		return nil, ccerror.Wrap(err, "failed to read config").
			WithCode(ccerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, ccerror.Wrap(err, "failed to parse YAML config").
				WithCode(ccerror.CodeConfigError).
				WithDetail("path", path)
		}
	case ".toml", "":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, ccerror.Wrap(err, "failed to parse TOML config").
				WithCode(ccerror.CodeConfigError).
				WithDetail("path", path)
		}
	default:
		return nil, ccerror.Newf("unsupported config format: %s", ext).
			WithCode(ccerror.CodeConfigError).
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in values
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from CMDCALL_CONFIG or the default
// locations. It returns Default() when no file exists anywhere.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./cmdcall.toml",
		"./cmdcall.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "cmdcall", "config.toml"),
			filepath.Join(home, ".config", "cmdcall", "config.yaml"),
		)
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "cmdcall"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Dispatch.Aliases == nil {
		c.Dispatch.Aliases = make(map[string]string)
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.Name = os.ExpandEnv(c.General.Name)
	for alias, line := range c.Dispatch.Aliases {
		c.Dispatch.Aliases[alias] = os.ExpandEnv(line)
	}
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.General.LogFormat {
	case "text", "json", "logfmt":
	default:
		return ccerror.Newf("invalid log format: %s", c.General.LogFormat).
			WithCode(ccerror.CodeConfigError)
	}

	if c.Dispatch.ScriptTimeout.Duration < 0 {
		return ccerror.New("script_timeout must not be negative").
			WithCode(ccerror.CodeConfigError)
	}

	for alias := range c.Dispatch.Aliases {
		if alias == "" || strings.ContainsAny(alias, " '\"") {
			return ccerror.New(fmt.Sprintf("invalid alias name: %q", alias)).
				WithCode(ccerror.CodeConfigError)
		}
	}

	return nil
}
