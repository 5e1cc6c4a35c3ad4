// Package config loads the portal configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"careerportal/internal/utils"
)

// Config holds all portal configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Portal  PortalConfig  `yaml:"portal"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// EnableAdmin exposes DELETE /admin/users for development.
	EnableAdmin bool `yaml:"enable_admin"`
	// Login attempts per second and burst, per client address.
	LoginRate  float64 `yaml:"login_rate"`
	LoginBurst int     `yaml:"login_burst"`
	// TLSDir holds server.crt and server.key; empty serves plain HTTP.
	TLSDir        string `yaml:"tls_dir"`
	TLSSelfSigned bool   `yaml:"tls_self_signed"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"` // json, bolt, sqlite
	Dir     string `yaml:"dir"`
	// Encrypt seals the json backend with a key derived from the master key.
	Encrypt       bool   `yaml:"encrypt"`
	MasterKeyHex  string `yaml:"-"`
	MasterKeyFile string `yaml:"master_key_file"`
}

type PortalConfig struct {
	// SubmitDelay simulates the round trip before a form completes.
	SubmitDelay string `yaml:"submit_delay"`
	// ViewTTL tears down views idle for longer than this.
	ViewTTL string `yaml:"view_ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
	File   string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "10s",
			LoginRate:       1,
			LoginBurst:      5,
		},
		Store: StoreConfig{
			Backend:       "json",
			Dir:           utils.GetDataDir(),
			MasterKeyFile: "master.key",
		},
		Portal: PortalConfig{
			SubmitDelay: "1s",
			ViewTTL:     "30m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CPC_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CPC_STORE_BACKEND"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("CPC_STORE_DIR"); v != "" {
		c.Store.Dir = v
	}
	if v := os.Getenv("MASTER_KEY_HEX"); v != "" {
		c.Store.MasterKeyHex = v
		c.Store.Encrypt = true
	}
	if v := os.Getenv("CPC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CPC_SUBMIT_DELAY"); v != "" {
		c.Portal.SubmitDelay = v
	}
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "json", "bolt", "sqlite":
	default:
		return fmt.Errorf("store.backend must be json, bolt or sqlite, got %q", c.Store.Backend)
	}
	if c.Store.Encrypt && c.Store.Backend != "json" {
		return fmt.Errorf("store.encrypt is only supported by the json backend")
	}
	if c.Store.Dir == "" {
		return errors.New("store.dir is required")
	}
	for name, v := range map[string]string{
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"portal.submit_delay":     c.Portal.SubmitDelay,
		"portal.view_ttl":         c.Portal.ViewTTL,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.Server.TLSSelfSigned && c.Server.TLSDir == "" {
		return errors.New("server.tls_self_signed requires server.tls_dir")
	}
	if c.Server.LoginRate <= 0 || c.Server.LoginBurst <= 0 {
		return errors.New("server.login_rate and server.login_burst must be positive")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) GetSubmitDelay() time.Duration { return mustDuration(c.Portal.SubmitDelay) }

func (c *Config) GetViewTTL() time.Duration { return mustDuration(c.Portal.ViewTTL) }

func (c *Config) GetShutdownTimeout() time.Duration { return mustDuration(c.Server.ShutdownTimeout) }

// mustDuration is only used on validated fields.
func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
