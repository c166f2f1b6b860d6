// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Provider    ProviderConfig    `mapstructure:"provider"`
	Session     SessionConfig     `mapstructure:"session"`
	Reliability ReliabilityConfig `mapstructure:"reliability"`
	Publication PublicationConfig `mapstructure:"publication"`
	Middleware  MiddlewareConfig  `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Driver         string `mapstructure:"driver"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	MaxOpenConns   int    `mapstructure:"max_open_conns"`
	MaxIdleConns   int    `mapstructure:"max_idle_conns"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ProviderConfig points at the platform bridge that speaks to the messaging platforms.
type ProviderConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	AuthKey        string               `mapstructure:"auth_key"`
	Timeout        int                  `mapstructure:"timeout"`
	Platforms      []string             `mapstructure:"platforms"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type SessionConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

// ReliabilityConfig bounds the scoring window. A zero WindowSize or WindowDays disables
// that bound.
type ReliabilityConfig struct {
	WindowSize            int `mapstructure:"window_size"`
	WindowDays            int `mapstructure:"window_days"`
	PendingTimeoutMinutes int `mapstructure:"pending_timeout_minutes"`
	SweepIntervalMinutes  int `mapstructure:"sweep_interval_minutes"`
}

type PublicationConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvPrefix("PNBA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("redis.db", 0)
	v.SetDefault("provider.timeout", 30)
	v.SetDefault("provider.platforms", []string{"telegram"})
	v.SetDefault("provider.circuit_breaker.max_requests", 3)
	v.SetDefault("provider.circuit_breaker.interval", 60)
	v.SetDefault("provider.circuit_breaker.timeout", 60)
	v.SetDefault("provider.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("provider.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("session.ttl_minutes", 15)
	v.SetDefault("reliability.window_size", 100)
	v.SetDefault("reliability.window_days", 30)
	v.SetDefault("reliability.pending_timeout_minutes", 15)
	v.SetDefault("reliability.sweep_interval_minutes", 5)
	v.SetDefault("publication.buffer_size", 256)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
}

// Validate rejects values the services cannot run with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "pgx":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive")
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("session.ttl_minutes must be positive")
	}
	if c.Reliability.WindowSize < 0 || c.Reliability.WindowDays < 0 {
		return fmt.Errorf("reliability window bounds must not be negative")
	}
	if c.Reliability.SweepIntervalMinutes <= 0 {
		return fmt.Errorf("reliability.sweep_interval_minutes must be positive")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the connection URL form used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

func (p *ProviderConfig) CallTimeout() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

func (s *SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

func (r *ReliabilityConfig) PendingTimeout() time.Duration {
	return time.Duration(r.PendingTimeoutMinutes) * time.Minute
}

func (r *ReliabilityConfig) SweepInterval() time.Duration {
	return time.Duration(r.SweepIntervalMinutes) * time.Minute
}

// Window returns the time bound of the scoring window, zero when unbounded.
func (r *ReliabilityConfig) Window() time.Duration {
	return time.Duration(r.WindowDays) * 24 * time.Hour
}
