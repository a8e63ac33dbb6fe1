package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allConfigKeys = []string{
	"APP_NAME", "APP_ENV", "APP_HOST", "APP_PORT", "APP_VERSION", "HTTP_REQUEST_TIMEOUT_SECONDS",
	"STORE_DRIVER", "STORE_DATA_DIR",
	"POSTGRES_DSN", "POSTGRES_MAX_CONNS", "POSTGRES_MIN_CONNS", "POSTGRES_RUN_MIGRATIONS",
	"POSTGRES_CONN_MAX_IDLE_SECONDS", "POSTGRES_CONN_MAX_LIFE_SECONDS",
	"SESSION_DRIVER", "SESSION_COOKIE_NAME", "SESSION_SECRET", "SESSION_COOKIE_SECURE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_KEY_PREFIX",
	"AUTH_PASSWORD_SCHEME", "AUTH_BCRYPT_COST",
	"LOG_LEVEL", "LOG_FORMAT", "NOTIFY_EMAIL_FROM", "NOTIFY_WEBHOOK_URL",
}

// isolateConfigEnv unsets every key Load reads so host values don't leak in.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "helpdesk", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, StoreDriverFile, cfg.Store.Driver)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.Equal(t, SessionDriverMemory, cfg.Session.Driver)
	assert.Equal(t, "helpdesk_session", cfg.Session.CookieName)
	assert.Equal(t, PasswordSchemePlain, cfg.Auth.PasswordScheme)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/helpdesk")
	t.Setenv("SESSION_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AUTH_PASSWORD_SCHEME", "bcrypt")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, SessionDriverRedis, cfg.Session.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, PasswordSchemeBcrypt, cfg.Auth.PasswordScheme)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "redis db", key: "REDIS_DB", val: "x"},
		{name: "store driver", key: "STORE_DRIVER", val: "mongo"},
		{name: "postgres without dsn", key: "STORE_DRIVER", val: "postgres"},
		{name: "session driver", key: "SESSION_DRIVER", val: "cookie"},
		{name: "password scheme", key: "AUTH_PASSWORD_SCHEME", val: "md5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
