package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultServerURL       = "http://localhost:5000"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDataDir         = "data/state"
	DefaultRefreshInterval = 5 * time.Second
	DefaultLogLevel        = "info"
)

// Config is the console application configuration.
type Config struct {
	ServerURL       string        // base URL of the remote bot server (without /api)
	RequestTimeout  time.Duration // fixed per-request timeout
	DataDir         string        // badger state directory
	RefreshInterval time.Duration // fallback dashboard refresh period
	LogLevel        string
	LogFile         string
}

// configFile is the on-disk YAML shape.
type configFile struct {
	ServerURL         string `yaml:"server_url"`
	RequestTimeoutSec int    `yaml:"request_timeout_sec"`
	DataDir           string `yaml:"data_dir"`
	RefreshIntervalMS int    `yaml:"refresh_interval_ms"`
	LogLevel          string `yaml:"log_level"`
	LogFile           string `yaml:"log_file"`
}

// Load reads the YAML file at path (missing file is fine, defaults apply)
// and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else {
			var cf configFile
			if err := yaml.Unmarshal(data, &cf); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			cfg.ServerURL = cf.ServerURL
			cfg.RequestTimeout = time.Duration(cf.RequestTimeoutSec) * time.Second
			cfg.DataDir = cf.DataDir
			cfg.RefreshInterval = time.Duration(cf.RefreshIntervalMS) * time.Millisecond
			cfg.LogLevel = cf.LogLevel
			cfg.LogFile = cf.LogFile
		}
	}

	cfg.applyEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := getEnv("GOBOT_SERVER_URL", ""); v != "" {
		c.ServerURL = v
	}
	if v := parseIntEnv("GOBOT_REQUEST_TIMEOUT_SEC", 0); v > 0 {
		c.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := getEnv("GOBOT_DATA_DIR", ""); v != "" {
		c.DataDir = v
	}
	if v := parseIntEnv("GOBOT_REFRESH_INTERVAL_MS", 0); v > 0 {
		c.RefreshInterval = time.Duration(v) * time.Millisecond
	}
	if v := getEnv("GOBOT_LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("GOBOT_LOG_FILE", ""); v != "" {
		c.LogFile = v
	}
}

// ApplyDefaults fills any unset field.
func (c *Config) ApplyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate rejects configurations the client cannot run with.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server_url must be an http(s) URL, got %q", c.ServerURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_sec must be positive")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval_ms must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}
