// Package config loads the optional YAML configuration of the fortune teller host
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CodewithAN/paper-fortune-teller/parameter"
)

var (
	// ErrBlankFortune rejects a configured fortune that is empty after trimming
	ErrBlankFortune = errors.New("blank fortune")

	// ErrVolumeRange rejects an audio volume outside [0, 1]
	ErrVolumeRange = errors.New("volume out of range")
)

// Config is the file-level configuration, every field is optional
type Config struct {
	Fortunes []string    `yaml:"fortunes"`
	Host     HostConfig  `yaml:"host"`
	Audio    AudioConfig `yaml:"audio"`
	Debug    bool        `yaml:"debug"`
}

// HostConfig selects where revealed fortunes are posted
type HostConfig struct {
	// Output is "stdout", "stderr", "none" or a file path, empty picks per host mode
	Output   string `yaml:"output"`
	Headless bool   `yaml:"headless"`
}

// AudioConfig controls the flip clicks and reveal chime
type AudioConfig struct {
	Mute   bool    `yaml:"mute"`
	Volume float64 `yaml:"volume"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Audio: AudioConfig{Volume: parameter.DefaultVolume},
	}
}

// Load reads and validates a YAML file, unknown keys are rejected
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges
// An empty fortune list is valid and selects the built-in messages
func (c Config) Validate() error {
	for i, f := range c.Fortunes {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("fortunes[%d]: %w", i, ErrBlankFortune)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v: %w", c.Audio.Volume, ErrVolumeRange)
	}
	return nil
}

// Marshal renders the configuration as YAML, used by -dump-config
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
