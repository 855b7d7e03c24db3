// Package config loads the server configuration from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	ProtocolTCP = "tcp"
	ProtocolWS  = "ws"
)

type Config struct {
	Threads         int          `yaml:"threads" toml:"threads" validate:"min=1,max=16"`
	Protocols       []string     `yaml:"protocols" toml:"protocols" validate:"required,min=1,dive,oneof=tcp ws"`
	TCP             TCPConfig    `yaml:"tcp" toml:"tcp"`
	WS              WSConfig     `yaml:"ws" toml:"ws"`
	Health          HealthConfig `yaml:"health" toml:"health"`
	Log             LogConfig    `yaml:"log" toml:"log"`
	ParseTimeout    Duration     `yaml:"parse_timeout" toml:"parse_timeout"`
	MaxMessageBytes int          `yaml:"max_message_bytes" toml:"max_message_bytes" validate:"min=1"`
	Store           StoreConfig  `yaml:"store" toml:"store"`
}

type TCPConfig struct {
	Address string `yaml:"address" toml:"address" validate:"required"`
}

type WSConfig struct {
	Address string `yaml:"address" toml:"address" validate:"required"`
	Path    string `yaml:"path" toml:"path" validate:"required,startswith=/"`
}

type HealthConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Address string `yaml:"address" toml:"address" validate:"required_with=Enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" toml:"format" validate:"oneof=text json"`
}

// StoreConfig points at the bucket holding schema snapshots. An empty URL
// disables snapshots.
type StoreConfig struct {
	URL string `yaml:"url" toml:"url"`
}

// Duration wraps time.Duration so it can be written as "5s" in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

func Default() *Config {
	return &Config{
		Threads:   2,
		Protocols: []string{ProtocolTCP},
		TCP:       TCPConfig{Address: "127.0.0.1:9874"},
		WS:        WSConfig{Address: "127.0.0.1:9875", Path: "/graphql"},
		Health:    HealthConfig{Address: "127.0.0.1:9876"},
		Log:       LogConfig{Level: "info", Format: "text"},

		ParseTimeout:    Duration{5 * time.Second},
		MaxMessageBytes: 1 << 20,
		Store:           StoreConfig{URL: "mem://"},
	}
}

// Load reads path on top of the defaults. The format follows the file
// extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasProtocol reports whether protocol is enabled.
func (c *Config) HasProtocol(protocol string) bool {
	for _, p := range c.Protocols {
		if p == protocol {
			return true
		}
	}
	return false
}
