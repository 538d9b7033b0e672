package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	UserService UserServiceConfig `toml:"user_service"`
	Booking     BookingConfig     `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int     `toml:"http_port"`
	ReadTimeout     int     `toml:"read_timeout"`
	WriteTimeout    int     `toml:"write_timeout"`
	IdleTimeout     int     `toml:"idle_timeout"`
	ShutdownTimeout int     `toml:"shutdown_timeout"`
	RateLimitRPS    float64 `toml:"rate_limit_rps"`
	RateLimitBurst  int     `toml:"rate_limit_burst"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// UserServiceConfig настройки клиента сервиса пользователей (роли)
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig политика бронирования
type BookingConfig struct {
	// MaxDailyMinutes дневной лимит занятого времени в минутах
	MaxDailyMinutes int `toml:"max_daily_minutes"`

	// DefaultSlotMinutes длительность слота без ends_at
	DefaultSlotMinutes int `toml:"default_slot_minutes"`

	// SingleRoomPerDay запрет на второе помещение в тот же день
	SingleRoomPerDay bool `toml:"single_room_per_day"`

	// Timezone референсная таймзона помещений
	Timezone string `toml:"timezone"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Booking.MaxDailyMinutes == 0 {
		c.Booking.MaxDailyMinutes = domain.DefaultMaxDailyMinutes
	}
	if c.Booking.DefaultSlotMinutes == 0 {
		c.Booking.DefaultSlotMinutes = domain.DefaultSlotMinutes
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = domain.DefaultTimezone
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.UserService.URL == "" {
		return fmt.Errorf("config: user_service.url is required")
	}
	if c.Booking.MaxDailyMinutes < 0 {
		return fmt.Errorf("config: booking.max_daily_minutes must not be negative")
	}
	return nil
}
