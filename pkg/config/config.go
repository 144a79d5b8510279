package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/srodi/procmon/pkg/logging"
	"github.com/srodi/procmon/pkg/types"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "PROCMON_CONFIG"

// DefaultInterval is the delay between two screen refreshes.
const DefaultInterval = time.Second

// Config holds the monitor settings. The binary takes no flags, so every
// setting comes from an optional YAML file.
type Config struct {
	Interval    time.Duration  `yaml:"interval"`
	Capacity    int            `yaml:"capacity"`
	ProcRoot    string         `yaml:"proc_root"`
	MetricsAddr string         `yaml:"metrics_addr"`
	Log         logging.Config `yaml:"log"`
}

// Default returns the settings used when no file is configured.
func Default() Config {
	return Config{
		Interval: DefaultInterval,
		Capacity: types.MaxProcesses,
		Log:      logging.Config{Level: "info"},
	}
}

// Load reads path on top of Default. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// FromEnv loads the file named by PROCMON_CONFIG, if any.
func FromEnv() (Config, error) {
	return Load(os.Getenv(EnvPath))
}

func (c *Config) normalize() {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Capacity <= 0 {
		c.Capacity = types.MaxProcesses
	}
}
