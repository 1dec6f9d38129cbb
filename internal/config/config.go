package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Checkout modes
const (
	CheckoutPlaceholder = "placeholder"
	CheckoutRedis       = "redis"
	CheckoutPostgres    = "postgres"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Wizard    WizardConfig    `toml:"wizard"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Checkout  CheckoutConfig  `toml:"checkout"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type WizardConfig struct {
	SettleDelayMs     int `toml:"settle_delay_ms"`
	SessionTTLSeconds int `toml:"session_ttl_seconds"`
	SweepIntervalSecs int `toml:"sweep_interval_seconds"`
}

// SettleDelay returns the presentation pause between stages
func (w WizardConfig) SettleDelay() time.Duration {
	return time.Duration(w.SettleDelayMs) * time.Millisecond
}

// SessionTTL returns how long an idle session is kept
func (w WizardConfig) SessionTTL() time.Duration {
	if w.SessionTTLSeconds <= 0 {
		return domain.DefaultSessionTTL
	}
	return time.Duration(w.SessionTTLSeconds) * time.Second
}

// SweepInterval returns how often idle sessions are collected
func (w WizardConfig) SweepInterval() time.Duration {
	if w.SweepIntervalSecs <= 0 {
		return time.Minute
	}
	return time.Duration(w.SweepIntervalSecs) * time.Second
}

type CatalogConfig struct {
	Services  []ServiceEntry `toml:"services"`
	Stylists  []StylistEntry `toml:"stylists"`
	Period    PeriodEntry    `toml:"period"`
	TimeSlots []string       `toml:"time_slots"`
}

type ServiceEntry struct {
	ID       int64  `toml:"id"`
	Name     string `toml:"name"`
	Duration string `toml:"duration"`
	Price    string `toml:"price"`
	Category string `toml:"category"`
}

type StylistEntry struct {
	ID    int64  `toml:"id"`
	Name  string `toml:"name"`
	Title string `toml:"title"`
	Image string `toml:"image"`
}

type PeriodEntry struct {
	Month      string     `toml:"month"`
	MonthShort string     `toml:"month_short"`
	Year       int        `toml:"year"`
	Days       []DayEntry `toml:"days"`
}

type DayEntry struct {
	Day     int    `toml:"day"`
	Weekday string `toml:"weekday"`
}

type CheckoutConfig struct {
	Mode     string         `toml:"mode"`
	Redis    RedisConfig    `toml:"redis"`
	Database DatabaseConfig `toml:"database"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Queue    string `toml:"queue"`
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
	RawDSN          string `toml:"dsn"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	if d.RawDSN != "" {
		return d.RawDSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type DashboardConfig struct {
	Period     string       `toml:"period"`
	Stats      []StatEntry  `toml:"stats"`
	Trajectory []int        `toml:"trajectory"`
	TopStaff   []StaffEntry `toml:"top_staff"`
}

type StatEntry struct {
	Title  string `toml:"title"`
	Value  string `toml:"value"`
	Change string `toml:"change"`
	IsUp   bool   `toml:"is_up"`
}

type StaffEntry struct {
	Name    string `toml:"name"`
	Revenue string `toml:"revenue"`
	Percent int    `toml:"percent"`
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "reservation-service",
		},
		Wizard: WizardConfig{
			SettleDelayMs:     int(domain.DefaultSettleDelay / time.Millisecond),
			SessionTTLSeconds: int(domain.DefaultSessionTTL / time.Second),
			SweepIntervalSecs: 60,
		},
		Checkout: CheckoutConfig{
			Mode: CheckoutPlaceholder,
			Redis: RedisConfig{
				Addr:  "localhost:6379",
				Queue: "checkout:requests",
			},
			Database: DatabaseConfig{
				Host:            "localhost",
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
	}
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("CHECKOUT_MODE"); v != "" {
		c.Checkout.Mode = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Checkout.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Checkout.Redis.Password = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.Checkout.Database.RawDSN = v
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Wizard.SettleDelayMs < 0 {
		return fmt.Errorf("%w: settle_delay_ms must not be negative", ErrInvalidConfig)
	}

	switch c.Checkout.Mode {
	case CheckoutPlaceholder, CheckoutRedis, CheckoutPostgres:
	default:
		return fmt.Errorf("%w: unknown checkout mode %q", ErrInvalidConfig, c.Checkout.Mode)
	}

	return c.Catalog.validate()
}

func (c CatalogConfig) validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: catalog has no services", ErrInvalidConfig)
	}
	if len(c.Stylists) == 0 {
		return fmt.Errorf("%w: catalog has no stylists", ErrInvalidConfig)
	}
	if len(c.Period.Days) == 0 {
		return fmt.Errorf("%w: catalog period has no days", ErrInvalidConfig)
	}
	if len(c.TimeSlots) == 0 {
		return fmt.Errorf("%w: catalog has no time slots", ErrInvalidConfig)
	}

	serviceIDs := make(map[int64]struct{}, len(c.Services))
	for _, s := range c.Services {
		if _, dup := serviceIDs[s.ID]; dup {
			return fmt.Errorf("%w: duplicate service id %d", ErrInvalidConfig, s.ID)
		}
		serviceIDs[s.ID] = struct{}{}
	}

	stylistIDs := make(map[int64]struct{}, len(c.Stylists))
	for _, s := range c.Stylists {
		if _, dup := stylistIDs[s.ID]; dup {
			return fmt.Errorf("%w: duplicate stylist id %d", ErrInvalidConfig, s.ID)
		}
		stylistIDs[s.ID] = struct{}{}
	}

	days := make(map[int]struct{}, len(c.Period.Days))
	for _, d := range c.Period.Days {
		if _, dup := days[d.Day]; dup {
			return fmt.Errorf("%w: duplicate day %d", ErrInvalidConfig, d.Day)
		}
		days[d.Day] = struct{}{}
	}

	slots := make(map[string]struct{}, len(c.TimeSlots))
	for _, s := range c.TimeSlots {
		if _, dup := slots[s]; dup {
			return fmt.Errorf("%w: duplicate time slot %q", ErrInvalidConfig, s)
		}
		slots[s] = struct{}{}
	}

	return nil
}

// ToDomain конвертирует каталог в доменную модель
func (c CatalogConfig) ToDomain() domain.Catalog {
	catalog := domain.Catalog{
		Services:  make([]domain.Service, 0, len(c.Services)),
		Stylists:  make([]domain.Stylist, 0, len(c.Stylists)),
		TimeSlots: append([]string(nil), c.TimeSlots...),
		Period: domain.BookingPeriod{
			Month:      c.Period.Month,
			MonthShort: c.Period.MonthShort,
			Year:       c.Period.Year,
			Days:       make([]domain.OfferedDay, 0, len(c.Period.Days)),
		},
	}

	for _, s := range c.Services {
		catalog.Services = append(catalog.Services, domain.Service{
			ID:       s.ID,
			Name:     s.Name,
			Duration: s.Duration,
			Price:    s.Price,
			Category: s.Category,
		})
	}
	for _, s := range c.Stylists {
		catalog.Stylists = append(catalog.Stylists, domain.Stylist{
			ID:    s.ID,
			Name:  s.Name,
			Title: s.Title,
			Image: s.Image,
		})
	}
	for _, d := range c.Period.Days {
		catalog.Period.Days = append(catalog.Period.Days, domain.OfferedDay{Day: d.Day, Weekday: d.Weekday})
	}

	return catalog
}

// ToDomain конвертирует статичные показатели дашборда в доменную модель
func (d DashboardConfig) ToDomain() domain.DashboardSnapshot {
	snapshot := domain.DashboardSnapshot{
		Period:     d.Period,
		Stats:      make([]domain.StatCard, 0, len(d.Stats)),
		Trajectory: make([]domain.RevenuePoint, 0, len(d.Trajectory)),
		TopStaff:   make([]domain.StaffRevenue, 0, len(d.TopStaff)),
	}

	for _, s := range d.Stats {
		snapshot.Stats = append(snapshot.Stats, domain.StatCard{
			Title:  s.Title,
			Value:  s.Value,
			Change: s.Change,
			IsUp:   s.IsUp,
		})
	}
	// Высота столбца в процентах, подпись в тысячах рупий
	for i, height := range d.Trajectory {
		snapshot.Trajectory = append(snapshot.Trajectory, domain.RevenuePoint{
			Week:    fmt.Sprintf("W%d", i+1),
			Percent: height,
			Label:   fmt.Sprintf("₹%dk", height*10),
		})
	}
	for _, s := range d.TopStaff {
		snapshot.TopStaff = append(snapshot.TopStaff, domain.StaffRevenue{
			Name:    s.Name,
			Revenue: s.Revenue,
			Percent: s.Percent,
		})
	}

	return snapshot
}
