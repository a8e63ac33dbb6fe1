package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreDriverFile     = "file"
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Session drivers.
const (
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

// Password schemes.
const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Store        StoreConfig
	Postgres     PostgresConfig
	Session      SessionConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver  string
	DataDir string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// SessionConfig controls the session cookie and its backing store.
type SessionConfig struct {
	Driver       string
	CookieName   string
	Secret       string
	CookieSecure bool
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string
}

// AuthConfig defines credential verification parameters.
type AuthConfig struct {
	PasswordScheme string
	BcryptCost     int
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "helpdesk"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Store: StoreConfig{
			Driver:  strings.ToLower(getEnv("STORE_DRIVER", StoreDriverFile)),
			DataDir: getEnv("STORE_DATA_DIR", "data"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Session: SessionConfig{
			Driver:       strings.ToLower(getEnv("SESSION_DRIVER", SessionDriverMemory)),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "helpdesk_session"),
			Secret:       getEnv("SESSION_SECRET", "dev-secret"),
			CookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:  os.Getenv("REDIS_PASSWORD"),
			DB:        redisDB,
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "helpdesk:session:"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Auth: AuthConfig{
			PasswordScheme: strings.ToLower(getEnv("AUTH_PASSWORD_SCHEME", PasswordSchemePlain)),
			BcryptCost:     getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", ""),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverMemory:
	case StoreDriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("STORE_DRIVER=%s requires POSTGRES_DSN", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverRedis:
	default:
		return fmt.Errorf("invalid SESSION_DRIVER %q", c.Session.Driver)
	}
	switch c.Auth.PasswordScheme {
	case PasswordSchemePlain, PasswordSchemeBcrypt:
	default:
		return fmt.Errorf("invalid AUTH_PASSWORD_SCHEME %q", c.Auth.PasswordScheme)
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
