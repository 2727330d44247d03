// Package config loads simulator settings and scenes from YAML or JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/collider/internal/core/collision"
	"github.com/zeusync/collider/internal/core/observability/log"
)

var (
	ErrNoScenes         = errors.New("config has no scenes")
	ErrUnknownShapeKind = errors.New("unknown shape kind")
	ErrEmptyMerge       = errors.New("merge shape needs at least one part")
	ErrInvalidScene     = errors.New("invalid scene")
)

// Config is the top-level document understood by collider-sim.
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Plugin PluginConfig `json:"plugin" yaml:"plugin"`
	Scenes []Scene      `json:"scenes" yaml:"scenes"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// PluginConfig mirrors collision.Config with string modes.
type PluginConfig struct {
	AutoMove  bool   `json:"auto_move" yaml:"auto_move"`
	Events    bool   `json:"events" yaml:"events"`
	Tracking  string `json:"tracking,omitempty" yaml:"tracking,omitempty"`
	Reporting string `json:"reporting,omitempty" yaml:"reporting,omitempty"`
}

// Collision converts to the engine configuration.
func (p PluginConfig) Collision() (collision.Config, error) {
	tracking, err := collision.ParseTrackingMode(p.Tracking)
	if err != nil {
		return collision.Config{}, err
	}
	reporting, err := collision.ParseReportingMode(p.Reporting)
	if err != nil {
		return collision.Config{}, err
	}
	cfg := collision.Config{
		AutoMove:  p.AutoMove,
		Events:    p.Events,
		Tracking:  tracking,
		Reporting: reporting,
	}
	return cfg, cfg.Validate()
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension; anything that is not
// .json is read as YAML.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c *Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = LoadJSON(f)
	} else {
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Validate checks everything that can be checked without building shapes.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Plugin.Collision(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Scenes) == 0 {
		errs = append(errs, ErrNoScenes)
	}
	for i := range c.Scenes {
		if err := c.Scenes[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene %d (%s): %w", i, c.Scenes[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

// Logger builds the zap-backed logger described by Log.
func (c *Config) Logger() (*log.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.NewWithEncoding(level, log.Encoding(c.Log.Encoding)), nil
}
