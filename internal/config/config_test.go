package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CONFIG_FILE", "APP_ENV", "LOG_LEVEL", "LOG_FILE", "HTTP_ADDR",
	"SHUTDOWN_TIMEOUT", "NOTIFIER", "RABBITMQ_URL", "SEED_CATALOG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("NOTIFIER", "AMQP")
	t.Setenv("RABBITMQ_URL", "amqp://localhost:5672/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, NotifierAMQP, cfg.Notifier)
	assert.Equal(t, "amqp://localhost:5672/", cfg.RabbitMQURL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: staging
log_level: warn
http_addr: ":7070"
shutdown_timeout: 5s
seed_catalog: ./catalog.yaml
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_ADDR", ":6060")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":6060", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "./catalog.yaml", cfg.SeedCatalog)
	assert.Equal(t, NotifierLog, cfg.Notifier)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]func(t *testing.T){
		"unknown notifier": func(t *testing.T) {
			t.Setenv("NOTIFIER", "pigeon")
		},
		"missing file": func(t *testing.T) {
			t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
		},
		"malformed file": func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte("http_addr: [unclosed"), 0o600))
			t.Setenv("CONFIG_FILE", path)
		},
	}

	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			setup(t)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
