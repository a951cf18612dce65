package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tristendillon/codemap/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "codemap.yaml"

const (
	ModeFixed    = "fixed"
	ModeCoverage = "coverage"
)

type Config struct {
	Detector Detector `yaml:"detector"`
	Scan     Scan     `yaml:"scan"`
	Store    Store    `yaml:"store"`
	Cache    Cache    `yaml:"cache"`
	Watch    Watch    `yaml:"watch"`
}

type Detector struct {
	Mode string `yaml:"mode"`
}

type Scan struct {
	Exclude      []string `yaml:"exclude"`
	MaxFileBytes int64    `yaml:"max_file_bytes"`
}

type Store struct {
	Dir string `yaml:"dir"`
}

type Cache struct {
	MaxEntries int           `yaml:"max_entries"`
	TTL        time.Duration `yaml:"ttl"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

func Default() *Config {
	return &Config{
		Detector: Detector{Mode: ModeFixed},
		Scan: Scan{
			Exclude:      []string{},
			MaxFileBytes: 0,
		},
		Store: Store{Dir: "analysis"},
		Cache: Cache{
			MaxEntries: 100,
			TTL:        15 * time.Minute,
		},
		Watch: Watch{Debounce: 500 * time.Millisecond},
	}
}

// Validate reports values Load cannot fix up on its own.
func (c *Config) Validate() error {
	switch c.Detector.Mode {
	case ModeFixed, ModeCoverage:
	default:
		return fmt.Errorf("unknown detector mode %q (want %q or %q)", c.Detector.Mode, ModeFixed, ModeCoverage)
	}
	if c.Scan.MaxFileBytes < 0 {
		return fmt.Errorf("scan.max_file_bytes must not be negative")
	}
	return nil
}

// Load reads codemap.yaml from the working directory, falling back to Default.
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}
	return LoadFrom(wd)
}

func LoadFrom(dir string) (*Config, error) {
	filePath := filepath.Join(dir, FileName)
	if _, err := os.Stat(filePath); err != nil {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if cfg.Detector.Mode == "" {
		cfg.Detector.Mode = ModeFixed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filePath, err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", *cfg)

	return cfg, nil
}

// Write marshals cfg to dir/codemap.yaml.
func Write(dir string, cfg *Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	filePath := filepath.Join(dir, FileName)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", filePath, err)
	}
	return filePath, nil
}
