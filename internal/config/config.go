package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string        `yaml:"version" json:"version"`
	Server  ServerConfig  `yaml:"server" json:"server"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`
	Night   NightWindow   `yaml:"night" json:"night"`
}

type ServerConfig struct {
	Addr           string `yaml:"addr" json:"addr"`
	MetricsEnabled bool   `yaml:"metrics_enabled" json:"metrics_enabled"`
	// AdminToken guards the admin endpoints. Empty leaves them open,
	// which is only acceptable for local development.
	AdminToken string `yaml:"admin_token" json:"-"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir" json:"data_dir"`
	// Backend selects between "bolt" (default) and "memory" (tests, ephemeral runs).
	Backend string `yaml:"backend" json:"backend"`
}

type CatalogConfig struct {
	// OverlayPath points at an optional YAML file merged over the built-in
	// definitions. Empty means built-ins only.
	OverlayPath string `yaml:"overlay_path" json:"overlay_path"`
}

// NightWindow bounds the hours treated as night for the night-passive bonus.
// The window wraps midnight: StartHour=22, EndHour=8 covers 22:00-08:00.
type NightWindow struct {
	StartHour int `yaml:"start_hour" json:"start_hour"`
	EndHour   int `yaml:"end_hour" json:"end_hour"`
}

func (n NightWindow) Contains(hour int) bool {
	if n.StartHour == n.EndHour {
		return false
	}
	if n.StartHour < n.EndHour {
		return hour >= n.StartHour && hour < n.EndHour
	}
	return hour >= n.StartHour || hour < n.EndHour
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "bolt"
	}
	if c.Night.StartHour == 0 && c.Night.EndHour == 0 {
		c.Night.StartHour = 22
		c.Night.EndHour = 8
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
