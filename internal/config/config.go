package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Источники данных офферов
const (
	SourcePostgres = "postgres"
	SourceHTTP     = "http"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Cache        CacheConfig        `toml:"cache"`
	Upstream     UpstreamConfig     `toml:"upstream"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig таймауты указываются в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig кеш отчётов в Redis
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
	Prefix   string `toml:"prefix"`
}

// UpstreamConfig источник таймслотов и бронирований офферов
type UpstreamConfig struct {
	Source  string `toml:"source"` // postgres | http
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

// AvailabilityConfig политика ёмкости по умолчанию (если для оффера нет сохранённой конфигурации)
type AvailabilityConfig struct {
	DefaultCapacity int    `toml:"default_capacity"`
	Mode            string `toml:"mode"`
	DayLimit        int    `toml:"day_limit"`
	HourLimit       int    `toml:"hour_limit"`
	MaxRangeDays    int    `toml:"max_range_days"`
}

// Policy политика ёмкости по умолчанию
func (a AvailabilityConfig) Policy() domain.CapacityPolicy {
	return domain.CapacityPolicy{
		DefaultCapacity: a.DefaultCapacity,
		Mode:            domain.ParseCapacityMode(a.Mode),
		DayLimit:        a.DayLimit,
		HourLimit:       a.HourLimit,
	}
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию
// и применяет переопределения из окружения (включая .env, если он есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_availability_service",
		},
		Cache: CacheConfig{
			Addr:   "localhost:6379",
			TTL:    30,
			Prefix: "availability",
		},
		Upstream: UpstreamConfig{
			Source:  SourcePostgres,
			Timeout: 5,
		},
		Availability: AvailabilityConfig{
			DefaultCapacity: domain.DefaultCapacity,
			Mode:            string(domain.DefaultCapacityMode),
			MaxRangeDays:    domain.DefaultMaxRangeDays,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
	}
	if v := os.Getenv("UPSTREAM_URL"); v != "" {
		c.Upstream.URL = v
	}
	if v := os.Getenv("UPSTREAM_TOKEN"); v != "" {
		c.Upstream.Token = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT must be a number: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	c.Upstream.Source = strings.ToLower(strings.TrimSpace(c.Upstream.Source))
	switch c.Upstream.Source {
	case SourcePostgres:
	case SourceHTTP:
		if c.Upstream.URL == "" {
			return fmt.Errorf("%w: upstream.url is required for source %q", ErrInvalidConfig, SourceHTTP)
		}
	default:
		return fmt.Errorf("%w: unknown upstream.source %q", ErrInvalidConfig, c.Upstream.Source)
	}

	a := c.Availability
	if a.DefaultCapacity < domain.MinCapacity || a.DefaultCapacity > domain.MaxCapacity {
		return fmt.Errorf("%w: availability.default_capacity must be between %d and %d",
			ErrInvalidConfig, domain.MinCapacity, domain.MaxCapacity)
	}
	if !domain.CapacityMode(a.Mode).IsValid() {
		return fmt.Errorf("%w: unknown availability.mode %q", ErrInvalidConfig, a.Mode)
	}
	if a.DayLimit < domain.MinDayLimit || a.DayLimit > domain.MaxDayLimit {
		return fmt.Errorf("%w: availability.day_limit out of range", ErrInvalidConfig)
	}
	if a.HourLimit < domain.MinHourLimit || a.HourLimit > domain.MaxHourLimit {
		return fmt.Errorf("%w: availability.hour_limit out of range", ErrInvalidConfig)
	}
	if a.MaxRangeDays <= 0 || a.MaxRangeDays > domain.MaxRangeDays {
		return fmt.Errorf("%w: availability.max_range_days must be between 1 and %d",
			ErrInvalidConfig, domain.MaxRangeDays)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
	}

	return nil
}
