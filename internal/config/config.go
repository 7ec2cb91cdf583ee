package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация приложения
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	Database         DatabaseConfig         `toml:"database"`
	ReservationStore ReservationStoreConfig `toml:"reservation_store"`
	Booking          BookingConfig          `toml:"booking"`
	Session          SessionConfig          `toml:"session"`
}

// ServerConfig настройки HTTP сервера. Таймауты в секундах.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	StorePort       int `toml:"store_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// DatabaseConfig настройки PostgreSQL хранилища бронирований
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
	MaxTxRetries    int    `toml:"max_tx_retries"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ReservationStoreConfig настройки клиента хранилища бронирований
type ReservationStoreConfig struct {
	URL           string `toml:"url"`        // корень API, например http://localhost:1337/api
	PublicURL     string `toml:"public_url"` // адрес для относительных путей изображений
	FallbackImage string `toml:"fallback_image"`
	Timeout       int    `toml:"timeout"` // секунды
}

// BookingConfig настройки взаимодействий бронирования
type BookingConfig struct {
	Mode               string `toml:"mode"` // optimistic | confirmed
	AlertTTLMs         int    `toml:"alert_ttl_ms"`
	LoginURL           string `toml:"login_url"`
	ConfirmationTTL    int    `toml:"confirmation_ttl"`     // секунды
	InteractionIdleTTL int    `toml:"interaction_idle_ttl"` // секунды, 0 - без закрытия по простою
	SweepInterval      int    `toml:"sweep_interval"`       // секунды
}

// AlertTTL время жизни уведомления
func (b BookingConfig) AlertTTL() time.Duration {
	return time.Duration(b.AlertTTLMs) * time.Millisecond
}

// SessionConfig имена заголовков с данными гостя
type SessionConfig struct {
	EmailHeader     string `toml:"email_header"`
	FirstNameHeader string `toml:"first_name_header"`
	LastNameHeader  string `toml:"last_name_header"`
}

// Load читает конфигурацию из TOML файла.
// Значения из .env и переменных окружения перекрывают файл.
func Load(path string) (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			StorePort:       1337,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booky",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MaxTxRetries:    3,
		},
		ReservationStore: ReservationStoreConfig{
			URL:     "http://localhost:1337/api",
			Timeout: 5,
		},
		Booking: BookingConfig{
			Mode:               "optimistic",
			AlertTTLMs:         3000,
			LoginURL:           "/login",
			ConfirmationTTL:    300,
			InteractionIdleTTL: 1800,
			SweepInterval:      60,
		},
		Session: SessionConfig{
			EmailHeader:     "X-Guest-Email",
			FirstNameHeader: "X-Guest-First-Name",
			LastNameHeader:  "X-Guest-Last-Name",
		},
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("STORE_URL"); v != "" {
		cfg.ReservationStore.URL = v
	}
	if v := os.Getenv("BOOKING_MODE"); v != "" {
		cfg.Booking.Mode = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.StorePort <= 0 {
		return fmt.Errorf("config: server ports must be positive")
	}
	if c.Booking.AlertTTLMs <= 0 {
		return fmt.Errorf("config: booking.alert_ttl_ms must be positive")
	}
	if c.ReservationStore.URL == "" {
		return fmt.Errorf("config: reservation_store.url is required")
	}
	if c.ReservationStore.Timeout <= 0 {
		return fmt.Errorf("config: reservation_store.timeout must be positive")
	}
	return nil
}
