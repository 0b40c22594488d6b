// Package config loads the optional drills.yaml file.
//
// The file is parsed with yaml.v3 into a generic map and decoded onto the
// defaults with mapstructure, so unset keys keep their default values and
// loosely typed values ("10s", "18") are accepted.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/drills/pkg/widget"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "drills.yaml"

// Environment overrides.
const (
	EnvSwapiURL = "DRILLS_SWAPI_URL"
	EnvTimeout  = "DRILLS_TIMEOUT"
)

// Config holds the endpoints and limits shared by the scripts.
type Config struct {
	SwapiURL    string           `mapstructure:"swapi_url"`
	HelloURL    string           `mapstructure:"hello_url"`
	SearchURL   string           `mapstructure:"search_url"`
	CharacterID string           `mapstructure:"character_id"`
	ItemsFile   string           `mapstructure:"items_file"`
	Timeout     time.Duration    `mapstructure:"timeout"`
	Listen      string           `mapstructure:"listen"`
	Bindings    []widget.Binding `mapstructure:"bindings"`
}

// Default returns the built-in configuration. Bindings are left empty and
// derived from the API URLs by Load.
func Default() Config {
	return Config{
		SwapiURL:    "https://swapi-api.alx-tools.com/api/",
		HelloURL:    "https://hellosalut.stefanbohacek.dev/",
		SearchURL:   "http://0.0.0.0:5000/search_user",
		CharacterID: "18",
		ItemsFile:   "add_item.json",
		Timeout:     30 * time.Second,
		Listen:      ":8080",
	}
}

// Load reads path over the defaults. A missing file at the default path is
// not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Bindings) == 0 {
		cfg.Bindings = widget.Defaults(cfg.SwapiURL, cfg.HelloURL)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode merges a YAML document onto cfg.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvSwapiURL); v != "" {
		cfg.SwapiURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}

// Validate checks the bindings and limits.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}
	seen := make(map[string]bool, len(c.Bindings))
	for _, b := range c.Bindings {
		if err := b.Validate(); err != nil {
			return err
		}
		if seen[b.Element] {
			return fmt.Errorf("binding %q declared twice", b.Element)
		}
		seen[b.Element] = true
	}
	return nil
}

// Binding looks up the binding of element.
func (c Config) Binding(element string) (widget.Binding, bool) {
	for _, b := range c.Bindings {
		if b.Element == element {
			return b, true
		}
	}
	return widget.Binding{}, false
}
