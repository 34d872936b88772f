package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SIGNINSAMPLE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, cfg.Store.Backend)
	require.Equal(t, filepath.Join(home, ".local", "share", "signinsample", "prefs.db"), cfg.Store.Path)
	require.Equal(t, "signinsample:", cfg.Store.Redis.KeyPrefix)
	require.Equal(t, 2*time.Second, cfg.Store.Redis.Timeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.True(t, cfg.UI.AltScreen)
}

func TestLoadReadsTomlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[store]
backend = "redis"

[store.redis]
addr = "10.0.0.5:6380"
db = 3
key_prefix = "demo:"
timeout = "500ms"

[log]
level = "debug"
format = "text"

[ui]
alt_screen = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("HOME", dir)
	t.Setenv("SIGNINSAMPLE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.Store.Backend)
	require.Equal(t, "10.0.0.5:6380", cfg.Store.Redis.Addr)
	require.Equal(t, 3, cfg.Store.Redis.DB)
	require.Equal(t, "demo:", cfg.Store.Redis.KeyPrefix)
	require.Equal(t, 500*time.Millisecond, cfg.Store.Redis.Timeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.False(t, cfg.UI.AltScreen)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\nbackend = \"redis\"\n"), 0o600))
	t.Setenv("HOME", dir)
	t.Setenv("SIGNINSAMPLE_CONFIG", path)
	t.Setenv("SIGNINSAMPLE_STORE_BACKEND", "file")
	t.Setenv("SIGNINSAMPLE_STORE_FILE_PATH", filepath.Join(dir, "prefs.json"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendFile, cfg.Store.Backend)
	require.Equal(t, filepath.Join(dir, "prefs.json"), cfg.Store.FilePath)
}

func TestLoadMissingExplicitConfigFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("SIGNINSAMPLE_CONFIG", filepath.Join(dir, "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		Store: StoreConfig{Backend: BackendMemory},
		Log:   LogConfig{Level: "info", Format: "json"},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "etcd" }},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
