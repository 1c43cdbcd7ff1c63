// Package config loads the optional pc1600ctl config file, which holds
// defaults for talking to the hardware so they need not be repeated as
// flags on every invocation.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Port is a case-insensitive fragment of the MIDI port name the
	// PC1600 is attached to, matched against both input and output
	// ports.
	Port string `toml:"port"`

	// Channel is the global MIDI channel the device listens on, 1-16 as
	// printed on the front panel.
	Channel int `toml:"channel"`

	// Timeout bounds the wait for a requested dump.
	Timeout duration `toml:"timeout"`
}

// duration lets TOML carry values like "5s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() Config {
	return Config{
		Port:    "pc1600",
		Channel: 1,
		Timeout: duration{5 * time.Second},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is empty; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Channel < 1 || cfg.Channel > 16 {
		return fmt.Errorf("config: channel %d out of range 1-16", cfg.Channel)
	}
	if cfg.Timeout.Duration <= 0 {
		return fmt.Errorf("config: timeout must be positive")
	}
	return nil
}
