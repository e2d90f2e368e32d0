package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address         string `yaml:"address"`
	SwaggerFile     string `yaml:"swagger_file"`
	ShutdownSeconds int    `yaml:"shutdown_seconds"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig with an empty Addr disables the search cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig with no brokers disables event publishing.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	SearchCacheTTL      int    `yaml:"search_cache_ttl_seconds"`
	ReferencePrefix     string `yaml:"reference_prefix"`
	ReferenceMaxRetries int    `yaml:"reference_max_retries"`
}

func (b BookingConfig) SearchCacheDuration() time.Duration {
	return time.Duration(b.SearchCacheTTL) * time.Second
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			SwaggerFile:     "api/openapi.json",
			ShutdownSeconds: 5,
		},
		Database: DatabaseConfig{
			Driver:  DriverMemory,
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Kafka: KafkaConfig{
			BookingTopic:       "booking-events",
			NotificationsTopic: "notifications",
			GroupID:            "flightbooking-worker",
		},
		Booking: BookingConfig{
			SearchCacheTTL:      60,
			ReferencePrefix:     "SX",
			ReferenceMaxRetries: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// yields the defaults, so the service runs without any infrastructure.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var referencePrefixPattern = regexp.MustCompile(`^[A-Z]{2}$`)

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMemory, DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.HTTP.Address == "" {
		return errors.New("http address is required")
	}
	if !referencePrefixPattern.MatchString(c.Booking.ReferencePrefix) {
		return fmt.Errorf("reference prefix must be two upper-case letters, got %q", c.Booking.ReferencePrefix)
	}
	if c.Booking.ReferenceMaxRetries < 1 {
		return errors.New("reference_max_retries must be at least 1")
	}
	return nil
}
