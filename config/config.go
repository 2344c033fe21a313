package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Admin    AdminConfig    `yaml:"admin"`
	Booking  BookingConfig  `yaml:"booking"`
	Chat     ChatConfig     `yaml:"chat"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type DatabaseConfig struct {
	// DSN is empty when the service runs against the in-memory store.
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type BookingConfig struct {
	// GuardAccept re-checks the blocked-date set when a booking is accepted.
	// Off by default: the site historically allows accepting two pending
	// requests that share a date.
	GuardAccept          bool `yaml:"guard_accept"`
	BlockedDatesCacheTTL int  `yaml:"blocked_dates_cache_ttl_seconds"`
}

type ChatConfig struct {
	ResponsesURL string `yaml:"responses_url"`
	Model        string `yaml:"model"`
	APIKey       string `yaml:"-"`
}

type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	From       string `yaml:"from"`
	Password   string `yaml:"-"`
	OwnerEmail string `yaml:"owner_email"`
}

func (s SMTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv overlays secrets and deploy-specific settings. Secrets never live
// in the yaml file.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		c.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv("CHAT_API_KEY"); v != "" {
		c.Chat.APIKey = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("BOOKING_GUARD_ACCEPT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Booking.GuardAccept = b
		}
	}
}
