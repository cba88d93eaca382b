// Package config loads the sketch settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the on-disk settings file. Zero fields keep their defaults.
type Config struct {
	Manifest   string  `yaml:"manifest"`
	Sources    int     `yaml:"sources"`
	AudioRange float64 `yaml:"audioRange"`
	PlaySounds bool    `yaml:"playSounds"`
	Seed       uint64  `yaml:"seed,omitempty"`
	Window     Window  `yaml:"window"`
	Verbose    bool    `yaml:"verbose,omitempty"`
}

// Defaults and limits. The sketch panel uses the same range limits.
const (
	DefaultManifest   = "./assets/samples.json"
	DefaultSources    = 10
	DefaultAudioRange = 15.0
	MinAudioRange     = 5.0
	MaxAudioRange     = 20.0
	DefaultWidth      = 800
	DefaultHeight     = 600
)

var ErrInvalid = errors.New("invalid config")

func Default() Config {
	return Config{
		Manifest:   DefaultManifest,
		Sources:    DefaultSources,
		AudioRange: DefaultAudioRange,
		Window:     Window{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies SKETCH_SEED and SKETCH_MANIFEST. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if s := getenv("SKETCH_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("SKETCH_SEED: %w", err)
		}
		c.Seed = v
	}
	if s := getenv("SKETCH_MANIFEST"); s != "" {
		c.Manifest = s
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Manifest == "":
		return fmt.Errorf("%w: manifest is empty", ErrInvalid)
	case c.Sources < 1:
		return fmt.Errorf("%w: sources must be >= 1, got %d", ErrInvalid, c.Sources)
	case c.AudioRange < MinAudioRange || c.AudioRange > MaxAudioRange:
		return fmt.Errorf("%w: audioRange %.2f outside [%g, %g]", ErrInvalid, c.AudioRange, MinAudioRange, MaxAudioRange)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Marshal renders the config as YAML, in the form Load reads.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
