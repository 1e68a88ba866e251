package appconf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all the configuration settings for the Application: the
// network port the server listens on, the operating environment, the
// accepted API keys and the climate data settings. Values are read from
// command-line flags, optionally overridden by a YAML config file.
type Config struct {
	Port            int
	Env             Environment
	ApiKeys         []string
	RateLimit       int
	DataPath        string
	Verbose         bool
	FeedsEnabled    bool
	RefreshInterval time.Duration
	JWTSecret       string
}

// fileConfig mirrors Config for YAML decoding. Empty fields leave the
// flag-provided values untouched.
type fileConfig struct {
	Port            int      `yaml:"port"`
	Env             string   `yaml:"env"`
	ApiKeys         []string `yaml:"api_keys"`
	RateLimit       int      `yaml:"rate_limit"`
	DataPath        string   `yaml:"data_path"`
	Verbose         *bool    `yaml:"verbose"`
	FeedsEnabled    *bool    `yaml:"feeds_enabled"`
	RefreshInterval string   `yaml:"refresh_interval"`
	JWTSecret       string   `yaml:"jwt_secret"`
}

// LoadConfigFile merges settings from a YAML file into the given Config.
// Fields absent from the file keep their existing values.
func LoadConfigFile(path string, config *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if fc.Port != 0 {
		config.Port = fc.Port
	}
	if fc.Env != "" {
		config.Env = EnvFlagToEnvironment(fc.Env)
	}
	if len(fc.ApiKeys) > 0 {
		config.ApiKeys = fc.ApiKeys
	}
	if fc.RateLimit != 0 {
		config.RateLimit = fc.RateLimit
	}
	if fc.DataPath != "" {
		config.DataPath = fc.DataPath
	}
	if fc.Verbose != nil {
		config.Verbose = *fc.Verbose
	}
	if fc.FeedsEnabled != nil {
		config.FeedsEnabled = *fc.FeedsEnabled
	}
	if fc.RefreshInterval != "" {
		interval, err := time.ParseDuration(fc.RefreshInterval)
		if err != nil {
			return fmt.Errorf("error parsing refresh_interval: %w", err)
		}
		config.RefreshInterval = interval
	}
	if fc.JWTSecret != "" {
		config.JWTSecret = fc.JWTSecret
	}

	return nil
}

// ParseApiKeys splits a comma-separated API key list from a flag value.
func ParseApiKeys(flagValue string) []string {
	if flagValue == "" {
		return nil
	}
	keys := strings.Split(flagValue, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}
