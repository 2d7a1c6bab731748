package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/maintkeeper/internal/logger"
)

// Переменные окружения, переопределяющие файл конфигурации
const (
	EnvDB       = "MAINTKEEPER_DB"
	EnvEndpoint = "MAINTKEEPER_ENDPOINT"
	EnvLogLevel = "MAINTKEEPER_LOG_LEVEL"
)

// Config represents the maintkeeper configuration
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Sync      SyncConfig      `yaml:"sync"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
	Cache     CacheConfig     `yaml:"cache"`
	Integrity IntegrityConfig `yaml:"integrity"`
	Log       LogConfig       `yaml:"log"`
	Server    ServerConfig    `yaml:"server"`
}

type StoreConfig struct {
	Path                 string `yaml:"path"`
	CompressionThreshold int    `yaml:"compression_threshold"`
}

type SyncConfig struct {
	Endpoint           string        `yaml:"endpoint"`
	ConflictResolution string        `yaml:"conflict_resolution"` // manual|local|remote
	Schedule           string        `yaml:"schedule"`            // cron с секундами; пусто отключает задачу
	Timeout            time.Duration `yaml:"timeout"`
	BatchSize          int           `yaml:"batch_size"`
	MaxRetries         int           `yaml:"max_retries"`
}

type CleanupConfig struct {
	MaxAge        *time.Duration `yaml:"max_age"` // nil отключает правило возраста
	Schedule      string         `yaml:"schedule"`
	MaxItems      int            `yaml:"max_items"`
	RemoveExpired bool           `yaml:"remove_expired"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl"`
	Capacity   int           `yaml:"capacity"`
}

type IntegrityConfig struct {
	Collections  map[string]CollectionRules `yaml:"collections"`
	Schedule     string                     `yaml:"schedule"`
	HistoryLimit int                        `yaml:"history_limit"`
}

// CollectionRules декларативные правила целостности одной коллекции
type CollectionRules struct {
	Fields     []FieldConfig     `yaml:"fields"`
	References []ReferenceConfig `yaml:"references"`
}

type FieldConfig struct {
	Min      *float64      `yaml:"min"`
	Max      *float64      `yaml:"max"`
	Items    *FieldConfig  `yaml:"items"`
	Name     string        `yaml:"name"`
	Type     string        `yaml:"type"` // string|number|boolean|object|array
	Pattern  string        `yaml:"pattern"`
	Enum     []any         `yaml:"enum"`
	Fields   []FieldConfig `yaml:"fields"`
	Required bool          `yaml:"required"`
}

type ReferenceConfig struct {
	Field      string `yaml:"field"`
	Collection string `yaml:"collection"`
	Target     string `yaml:"target"` // пусто значит id записи
	Required   bool   `yaml:"required"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path:                 "maintkeeper.db",
			CompressionThreshold: 1024,
		},
		Sync: SyncConfig{
			ConflictResolution: "manual",
			Timeout:            time.Minute,
			BatchSize:          10,
			MaxRetries:         3,
		},
		Cleanup: CleanupConfig{
			RemoveExpired: true,
		},
		Cache: CacheConfig{
			Capacity: 1000,
		},
		Integrity: IntegrityConfig{
			HistoryLimit: 1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logger.FormatText,
		},
		Server: ServerConfig{
			Addr:     ":8080",
			Database: "maintkeeper-server.db",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. An empty path uses defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDB); ok && v != "" {
		c.Store.Path = v
	}
	if v, ok := os.LookupEnv(EnvEndpoint); ok && v != "" {
		c.Sync.Endpoint = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var errs []error

	if c.Store.Path == "" {
		errs = append(errs, errors.New("store.path is required"))
	}
	if c.Store.CompressionThreshold < 0 {
		errs = append(errs, errors.New("store.compression_threshold must not be negative"))
	}

	switch c.Sync.ConflictResolution {
	case "manual", "local", "remote":
	default:
		errs = append(errs, fmt.Errorf("sync.conflict_resolution must be manual, local or remote, got %q", c.Sync.ConflictResolution))
	}
	if c.Sync.BatchSize <= 0 {
		errs = append(errs, errors.New("sync.batch_size must be positive"))
	}
	if c.Sync.MaxRetries <= 0 {
		errs = append(errs, errors.New("sync.max_retries must be positive"))
	}
	if c.Sync.Schedule != "" && c.Sync.Endpoint == "" {
		errs = append(errs, errors.New("sync.endpoint is required when sync.schedule is set"))
	}

	if c.Cleanup.MaxAge != nil && *c.Cleanup.MaxAge < 0 {
		errs = append(errs, errors.New("cleanup.max_age must not be negative"))
	}
	if c.Cleanup.MaxItems < 0 {
		errs = append(errs, errors.New("cleanup.max_items must not be negative"))
	}

	if c.Cache.Capacity <= 0 {
		errs = append(errs, errors.New("cache.capacity must be positive"))
	}
	if c.Integrity.HistoryLimit <= 0 {
		errs = append(errs, errors.New("integrity.history_limit must be positive"))
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case logger.FormatText, logger.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// String renders the effective configuration as YAML
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return strconv.Quote(err.Error())
	}
	return string(data)
}
