// Package config loads the YAML configuration shared by the CLI and the HTTP server.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"
)

type Config struct {
	Image  ImageConfig  `yaml:"image"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// MaxBodyBytes limits request bodies, 0 means 64MiB
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// Default returns a configuration with every value populated
func Default() Config {
	var c Config
	c.PopulateUnsetConfigVars()
	return c
}

// Load reads a YAML file, an empty path returns Default
func Load(path string) (Config, error) {
	var c Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err = yaml.Unmarshal(raw, &c); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	c.PopulateUnsetConfigVars()
	return c, c.Validate()
}

func (c *Config) PopulateUnsetConfigVars() {
	c.Image.populateUnsetConfigVars()
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 64 << 20
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func (c Config) Validate() error {
	if _, err := c.Image.EncodeOptions(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
