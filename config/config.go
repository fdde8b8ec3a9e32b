// Package config loads runtime settings: built-in defaults, then an optional TOML file,
// then a .env file and FIREWORK_* environment variables. Command-line flags are applied
// on top by the caller. Physics constants are fixed and never configurable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/firework/audio"
	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/engine"
	"github.com/lixenwraith/firework/render"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

var (
	ErrParse   = errors.New("config parse failed")
	ErrEnv     = errors.New("invalid environment override")
	ErrInvalid = errors.New("invalid config")
)

// Duration decodes TOML strings like "20ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full runtime configuration
type Config struct {
	Debug  bool         `toml:"debug"`
	Seed   uint64       `toml:"seed"`
	Loop   LoopConfig   `toml:"loop"`
	Audio  AudioConfig  `toml:"audio"`
	Visual VisualConfig `toml:"visual"`
}

// LoopConfig paces the main loop
type LoopConfig struct {
	TickInterval Duration `toml:"tick_interval"`
	PollTimeout  Duration `toml:"poll_timeout"`
	ShowStatus   bool     `toml:"show_status"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// VisualConfig holds glyph colors as tcell names or #rrggbb
type VisualConfig struct {
	ActiveColor string `toml:"active_color"`
	InertColor  string `toml:"inert_color"`
	StatusColor string `toml:"status_color"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Loop: LoopConfig{
			TickInterval: Duration{constant.TickInterval},
			PollTimeout:  Duration{constant.PollTimeout},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constant.DefaultVolume,
		},
		Visual: VisualConfig{
			ActiveColor: constant.DefaultActiveColor,
			InertColor:  constant.DefaultInertColor,
			StatusColor: constant.DefaultStatusColor,
		},
	}
}

// Load builds a config from defaults, the TOML file at path, envFile, and the process environment.
// Empty path or envFile skips that layer; a missing file is not an error.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		// Existing process variables win over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrEnv, envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return nil
}

// applyEnv overrides fields from FIREWORK_* variables
func (c *Config) applyEnv() error {
	var err error
	set := func(name string, apply func(string) error) {
		v, ok := os.LookupEnv(name)
		if !ok || err != nil {
			return
		}
		if e := apply(v); e != nil {
			err = fmt.Errorf("%w: %s=%q: %w", ErrEnv, name, v, e)
		}
	}

	set("FIREWORK_DEBUG", boolInto(&c.Debug))
	set("FIREWORK_SEED", func(v string) (e error) {
		c.Seed, e = strconv.ParseUint(v, 10, 64)
		return e
	})
	set("FIREWORK_TICK_INTERVAL", c.Loop.TickInterval.UnmarshalString)
	set("FIREWORK_POLL_TIMEOUT", c.Loop.PollTimeout.UnmarshalString)
	set("FIREWORK_SHOW_STATUS", boolInto(&c.Loop.ShowStatus))
	set("FIREWORK_AUDIO", boolInto(&c.Audio.Enabled))
	set("FIREWORK_VOLUME", func(v string) (e error) {
		c.Audio.Volume, e = strconv.ParseFloat(v, 64)
		return e
	})
	set("FIREWORK_ACTIVE_COLOR", stringInto(&c.Visual.ActiveColor))
	set("FIREWORK_INERT_COLOR", stringInto(&c.Visual.InertColor))
	set("FIREWORK_STATUS_COLOR", stringInto(&c.Visual.StatusColor))

	return err
}

// UnmarshalString is UnmarshalText for env values
func (d *Duration) UnmarshalString(s string) error {
	return d.UnmarshalText([]byte(s))
}

func boolInto(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func stringInto(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

// Validate checks ranges and color names
func (c *Config) Validate() error {
	if c.Loop.TickInterval.Duration <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %v", ErrInvalid, c.Loop.TickInterval)
	}
	if c.Loop.PollTimeout.Duration < 0 {
		return fmt.Errorf("%w: poll_timeout must not be negative, got %v", ErrInvalid, c.Loop.PollTimeout)
	}
	if err := c.AudioConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Palette resolves the visual colors
func (c *Config) Palette() (render.Palette, error) {
	return render.ParsePalette(c.Visual.ActiveColor, c.Visual.InertColor, c.Visual.StatusColor)
}

// AudioConfig converts to the audio package settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.Volume = c.Audio.Volume
	return ac
}

// LoopConfig converts to the engine loop settings
func (c *Config) LoopConfig() engine.LoopConfig {
	lc := engine.DefaultLoopConfig()
	lc.TickInterval = c.Loop.TickInterval.Duration
	lc.PollTimeout = c.Loop.PollTimeout.Duration
	lc.ShowStatus = c.Loop.ShowStatus
	if !c.Debug {
		lc.StatsEvery = 0
	}
	return lc
}
