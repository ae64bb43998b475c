package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the config file when --config is not given
const EnvConfigPath = "TASKHUB_CONFIG"

type Config struct {
	MongoURI        string        `yaml:"mongo_uri"`
	Port            string        `yaml:"port"`
	DBName          string        `yaml:"db_name"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	ActivityTimeout time.Duration `yaml:"activity_timeout"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	Env             string        `yaml:"env"`
}

func Default() *Config {
	return &Config{
		// cascading deletes run in transactions, which need a replica set or mongos
		MongoURI:        "mongodb://localhost:27017/?replicaSet=rs0",
		Port:            "8080",
		DBName:          "taskhub",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		ActivityTimeout: 5 * time.Second,
		LogLevel:        "info",
		LogFormat:       "json",
		Env:             "development",
	}
}

// LoadConfig layers defaults, the optional YAML file at path and the environment, in that order.
// An empty path falls back to $TASKHUB_CONFIG; no file at all is fine.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.MongoURI = getEnv("MONGO_URI", cfg.MongoURI)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.ActivityTimeout = getEnvDuration("ACTIVITY_TIMEOUT", cfg.ActivityTimeout)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.Env = getEnv("APP_ENV", cfg.Env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.MongoURI) == "" {
		return errors.New("MONGO_URI is required")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.DBName == "" {
		return errors.New("DB_NAME is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvDuration accepts plain seconds ("10") or a Go duration ("1m30s")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
