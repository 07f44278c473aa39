package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Zenoti   ZenotiConfig   `toml:"zenoti"`
	Schedule ScheduleConfig `toml:"schedule"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (значения таймаутов в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// ZenotiConfig настройки клиента Zenoti API
// APIKey может быть переопределён переменной окружения ZENOTI_API_KEY,
// BaseURL - переменной ZENOTI_API_URL, чтобы не хранить креды в config.toml
type ZenotiConfig struct {
	BaseURL        string  `toml:"base_url"`
	APIKey         string  `toml:"api_key"`
	Timeout        int     `toml:"timeout"`
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// ScheduleConfig настройки построения расписания
type ScheduleConfig struct {
	WindowDays  int `toml:"window_days"`
	Concurrency int `toml:"concurrency"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig настройки CORS для браузерных клиентов
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из toml файла, применяет переменные окружения
// и дефолтные значения
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("ZENOTI_API_KEY"); key != "" {
		c.Zenoti.APIKey = key
	}
	if url := os.Getenv("ZENOTI_API_URL"); url != "" {
		c.Zenoti.BaseURL = url
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Zenoti.Timeout == 0 {
		c.Zenoti.Timeout = 5
	}
	if c.Zenoti.RateLimitRPS == 0 {
		c.Zenoti.RateLimitRPS = 10
	}
	if c.Zenoti.RateLimitBurst == 0 {
		c.Zenoti.RateLimitBurst = 20
	}
	if c.Schedule.WindowDays == 0 {
		c.Schedule.WindowDays = 10
	}
	if c.Schedule.Concurrency == 0 {
		c.Schedule.Concurrency = 4
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "spa-booking-service"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
}

func (c *Config) validate() error {
	if c.Zenoti.BaseURL == "" {
		return fmt.Errorf("zenoti.base_url is required (or set ZENOTI_API_URL)")
	}
	if c.Zenoti.APIKey == "" {
		return fmt.Errorf("zenoti.api_key is required (or set ZENOTI_API_KEY)")
	}
	if c.Schedule.WindowDays < 1 {
		return fmt.Errorf("schedule.window_days must be positive, got %d", c.Schedule.WindowDays)
	}
	if c.Schedule.Concurrency < 1 {
		return fmt.Errorf("schedule.concurrency must be positive, got %d", c.Schedule.Concurrency)
	}
	return nil
}
