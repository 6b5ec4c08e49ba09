package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the service configuration.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Storage   StorageConfig   `json:"storage"`
	Metrics   MetricsConfig   `json:"metrics"`
}

// ServerConfig defines the API listener.
type ServerConfig struct {
	Addr string `json:"addr"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":5000"
	}
}

// SchedulerConfig carries service-level planning defaults, applied when a
// request or plan file leaves the corresponding field unset.
type SchedulerConfig struct {
	BufferMinutes  int `json:"buffer_minutes"`
	MaxTasksPerDay int `json:"max_tasks_per_day"`
	HorizonDays    int `json:"horizon_days"`
	LookaheadDays  int `json:"lookahead_days"`
}

func (c *SchedulerConfig) SetDefaults() {
	if c.BufferMinutes == 0 {
		c.BufferMinutes = 15
	}
	if c.MaxTasksPerDay == 0 {
		c.MaxTasksPerDay = 2
	}
	if c.LookaheadDays == 0 {
		c.LookaheadDays = 30
	}
}

// Validate checks mandatory fields.
func (c SchedulerConfig) Validate() error {
	if c.BufferMinutes < 0 {
		return fmt.Errorf("scheduler.buffer_minutes must not be negative")
	}
	if c.MaxTasksPerDay < 1 {
		return fmt.Errorf("scheduler.max_tasks_per_day must be at least 1")
	}
	if c.HorizonDays < 0 {
		return fmt.Errorf("scheduler.horizon_days must not be negative")
	}
	return nil
}

// StorageConfig defines where documents are persisted.
type StorageConfig struct {
	Dir string `json:"dir"`
}

func (c *StorageConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "scheduler_storage"
	}
}

// MetricsConfig defines the Prometheus endpoint.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
}

func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
}

// Load reads configuration from a YAML or JSON file with optional
// environment overrides using the SCHED_ prefix (nested keys joined by __).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("SCHED_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sched_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults to all sections.
func (c *Config) SetDefaults() {
	c.Server.SetDefaults()
	c.Scheduler.SetDefaults()
	c.Storage.SetDefaults()
	c.Metrics.SetDefaults()
}

// Default returns a configuration with every default applied, used when no
// config file is given.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}
