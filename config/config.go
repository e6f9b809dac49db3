// Package config loads the tuning file used by the blockfall commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/game"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when Load is given no path.
const EnvPath = "BLOCKFALL_CONFIG"

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// Randomizer names accepted by the randomizer key.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

type Config struct {
	Board      BoardConfig `yaml:"board"`
	Speed      SpeedConfig `yaml:"speed"`
	Input      InputConfig `yaml:"input"`
	Randomizer string      `yaml:"randomizer"`
	Seed       uint64      `yaml:"seed"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SpeedConfig struct {
	BaseInterval float64 `yaml:"base_interval"`
	SpeedFactor  float64 `yaml:"speed_factor"`
}

// InputConfig holds the auto-repeat timings, in seconds, for held movement keys.
type InputConfig struct {
	RepeatDelay float64 `yaml:"repeat_delay"`
	RepeatRate  float64 `yaml:"repeat_rate"`
}

func Default() Config {
	return Config{
		Board: BoardConfig{Width: 10, Height: 20},
		Speed: SpeedConfig{
			BaseInterval: game.BaseInterval,
			SpeedFactor:  game.SpeedFactor,
		},
		Input: InputConfig{
			RepeatDelay: 0.17,
			RepeatRate:  0.05,
		},
		Randomizer: RandomizerUniform,
	}
}

// Load reads a YAML config from path. An empty path falls back to $BLOCKFALL_CONFIG, and
// when that is unset too the defaults are returned.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("%w: board width %d is below 4", ErrInvalid, c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("%w: board height %d is below 4", ErrInvalid, c.Board.Height)
	case c.Speed.BaseInterval <= 0:
		return fmt.Errorf("%w: base_interval must be positive", ErrInvalid)
	case c.Speed.SpeedFactor < 0:
		return fmt.Errorf("%w: speed_factor must not be negative", ErrInvalid)
	case c.Input.RepeatDelay < 0:
		return fmt.Errorf("%w: repeat_delay must not be negative", ErrInvalid)
	case c.Input.RepeatRate <= 0:
		return fmt.Errorf("%w: repeat_rate must be positive", ErrInvalid)
	}

	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalid, c.Randomizer)
	}
	return nil
}

// SessionOptions returns the game options described by c. extra options are appended.
func (c Config) SessionOptions(extra ...game.Option) []game.Option {
	opts := []game.Option{
		game.WithBoardSize(c.Board.Width, c.Board.Height),
		game.WithSpeed(c.Speed.BaseInterval, c.Speed.SpeedFactor),
	}
	return append(opts, extra...)
}

// Drawer builds the configured piece drawer. A zero seed is replaced by one from the clock.
func (c Config) Drawer() game.Drawer {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if c.Randomizer == RandomizerBag {
		return game.NewBagDrawer(seed)
	}
	return game.NewUniformDrawer(seed)
}

func (c Config) Repeater() *game.Repeater {
	return game.NewRepeater(c.Input.RepeatDelay, c.Input.RepeatRate)
}
