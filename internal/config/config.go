// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unclebandit/storefront/internal/logging"
)

type Config struct {
	Addr      string         `yaml:"addr" toml:"addr"`
	PublicDir string         `yaml:"public_dir" toml:"public_dir"`
	LogLevel  string         `yaml:"log_level" toml:"log_level"`
	Database  DatabaseConfig `yaml:"database" toml:"database"`
	Queue     QueueConfig    `yaml:"queue" toml:"queue"`
}

type DatabaseConfig struct {
	// Driver is one of sqlite, postgres, pgx or mysql.
	Driver string `yaml:"driver" toml:"driver"`
	DSN    string `yaml:"dsn" toml:"dsn"`
}

type QueueConfig struct {
	// URL of a RabbitMQ broker. Empty keeps order events in process.
	URL        string `yaml:"url" toml:"url"`
	OrderTopic string `yaml:"order_topic" toml:"order_topic"`
}

var drivers = map[string]bool{"sqlite": true, "postgres": true, "pgx": true, "mysql": true}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Addr:      ":3000",
		PublicDir: "public",
		LogLevel:  "info",
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    ":memory:",
		},
		Queue: QueueConfig{
			OrderTopic: "order_placed",
		},
	}
}

// LoadConfig layers defaults, the optional file at path and environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			err = toml.Unmarshal(data, cfg)
		case ".yml", ".yaml":
			err = yaml.Unmarshal(data, cfg)
		default:
			return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	setFromEnv(&c.Addr, "SHOP_ADDR")
	setFromEnv(&c.PublicDir, "SHOP_PUBLIC_DIR")
	setFromEnv(&c.LogLevel, "LOG_LEVEL")
	setFromEnv(&c.Database.Driver, "DB_DRIVER")
	setFromEnv(&c.Database.DSN, "DB_DSN")
	setFromEnv(&c.Queue.URL, "AMQP_URL")
	setFromEnv(&c.Queue.OrderTopic, "ORDER_TOPIC")
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !drivers[c.Database.Driver] {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	if c.Queue.OrderTopic == "" {
		return fmt.Errorf("queue order_topic is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
