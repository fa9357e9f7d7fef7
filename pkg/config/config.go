package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the mcsync configuration file.
type Config struct {
	MC        MCConfig        `yaml:"mc"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MCConfig stores Maintenance Connection API information.
type MCConfig struct {
	Server   string `yaml:"server"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Top      int    `yaml:"top"`
	Skip     int    `yaml:"skip"`
}

// SchedulerConfig configures the background export scheduler.
type SchedulerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Tick    string `yaml:"tick"`
}

// ExportConfig names the module the watch command exports and where.
type ExportConfig struct {
	Module string `yaml:"module"`
	Path   string `yaml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Load reads YAML configuration and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// Credentials may live outside the config file on shared machines.
func applyEnv(cfg *Config) {
	if v := os.Getenv("MC_SERVER"); v != "" {
		cfg.MC.Server = v
	}
	if v := os.Getenv("MC_USER"); v != "" {
		cfg.MC.User = v
	}
	if v := os.Getenv("MC_PASSWORD"); v != "" {
		cfg.MC.Password = v
	}
}
