package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Booking  BookingConfig  `mapstructure:"booking"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, production
	LogLevel    string `mapstructure:"log_level"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// DatabaseConfig holds entity store connection settings
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"` // mysql, sqlite
	URL      string `mapstructure:"url"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	Path     string `mapstructure:"path"` // sqlite file, ":memory:" allowed
	Seed     bool   `mapstructure:"seed"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
}

// RedisConfig holds Redis connection settings for the distributed booking lock
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BookingConfig holds booking lock settings
type BookingConfig struct {
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
	LockRetry     time.Duration `mapstructure:"lock_retry"`
	LockKeyPrefix string        `mapstructure:"lock_key_prefix"`
}

// CORSConfig holds the raw comma-separated origin list
type CORSConfig struct {
	Origins string `mapstructure:"origins"`
}

// env names used by existing deployments
var envBindings = map[string][]string{
	"app.environment":    {"APP_ENV"},
	"app.log_level":      {"LOG_LEVEL"},
	"server.port":        {"PORT"},
	"database.driver":    {"DB_DRIVER"},
	"database.url":       {"MYSQL_URL", "DATABASE_URL"},
	"database.user":      {"DB_USER"},
	"database.password":  {"DB_PASS"},
	"database.host":      {"DB_HOST"},
	"database.port":      {"DB_PORT"},
	"database.name":      {"DB_NAME"},
	"database.path":      {"DB_PATH"},
	"database.seed":      {"DB_SEED"},
	"redis.enabled":      {"REDIS_ENABLED"},
	"redis.addr":         {"REDIS_ADDR"},
	"redis.password":     {"REDIS_PASSWORD"},
	"redis.db":           {"REDIS_DB"},
	"booking.lock_ttl":   {"BOOKING_LOCK_TTL"},
	"booking.lock_retry": {"BOOKING_LOCK_RETRY"},
	"cors.origins":       {"CORS_ORIGINS"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "hotel-booking")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 20*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.name", "hotel_db")
	v.SetDefault("database.path", "hotel.db")
	v.SetDefault("database.seed", false)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("database.slow_threshold", time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("booking.lock_ttl", 10*time.Second)
	v.SetDefault("booking.lock_retry", 50*time.Millisecond)
	v.SetDefault("booking.lock_key_prefix", "hotel:lock:")

	v.SetDefault("cors.origins", "")
}

// Load reads configuration from defaults, an optional config.yaml in the
// working directory (or ./config), and the environment, in increasing order
// of precedence.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	switch strings.ToLower(c.Database.Driver) {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Redis.Enabled && strings.TrimSpace(c.Redis.Addr) == "" {
		return errors.New("redis enabled but no address configured")
	}
	return nil
}
