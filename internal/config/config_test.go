package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Store.Backend)
	assert.Equal(t, time.Second, cfg.GetSubmitDelay())
	assert.Equal(t, 30*time.Minute, cfg.GetViewTTL())
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeout())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
  enable_admin: true
store:
  backend: sqlite
  dir: /tmp/cpc
portal:
  submit_delay: 250ms
logging:
  level: debug
  format: console
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.True(t, cfg.Server.EnableAdmin)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/cpc", cfg.Store.Dir)
	assert.Equal(t, 250*time.Millisecond, cfg.GetSubmitDelay())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Server.LoginBurst, "unset keys keep defaults")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Server.Addr = ":7000"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", loaded.Server.Addr)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("store and server", func(t *testing.T) {
		t.Setenv("CPC_ADDR", ":1234")
		t.Setenv("CPC_STORE_BACKEND", "bolt")
		t.Setenv("CPC_STORE_DIR", "/var/lib/cpc")
		t.Setenv("CPC_LOG_LEVEL", "warn")
		t.Setenv("CPC_SUBMIT_DELAY", "0s")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, ":1234", cfg.Server.Addr)
		assert.Equal(t, "bolt", cfg.Store.Backend)
		assert.Equal(t, "/var/lib/cpc", cfg.Store.Dir)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, time.Duration(0), cfg.GetSubmitDelay())
	})

	t.Run("master key turns on encryption", func(t *testing.T) {
		t.Setenv("MASTER_KEY_HEX", "00ff")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Store.Encrypt)
		assert.Equal(t, "00ff", cfg.Store.MasterKeyHex)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"backend", func(c *Config) { c.Store.Backend = "redis" }},
		{"encrypt on bolt", func(c *Config) { c.Store.Backend = "bolt"; c.Store.Encrypt = true }},
		{"empty dir", func(c *Config) { c.Store.Dir = "" }},
		{"delay", func(c *Config) { c.Portal.SubmitDelay = "soon" }},
		{"rate", func(c *Config) { c.Server.LoginRate = 0 }},
		{"format", func(c *Config) { c.Logging.Format = "xml" }},
		{"self-signed without dir", func(c *Config) { c.Server.TLSSelfSigned = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}
