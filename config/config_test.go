package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 0.5, cfg.Speed.BaseInterval)
	assert.Equal(t, 0.2, cfg.Speed.SpeedFactor)
	assert.Equal(t, config.RandomizerUniform, cfg.Randomizer)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
board:
  width: 12
speed:
  base_interval: 1.0
randomizer: bag
seed: 99
`))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height, "missing keys keep their defaults")
	assert.Equal(t, 1.0, cfg.Speed.BaseInterval)
	assert.Equal(t, 0.2, cfg.Speed.SpeedFactor)
	assert.Equal(t, config.RandomizerBag, cfg.Randomizer)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"narrow board", "board: {width: 3}"},
		{"short board", "board: {height: 2}"},
		{"zero interval", "speed: {base_interval: 0}"},
		{"negative factor", "speed: {speed_factor: -1}"},
		{"negative delay", "input: {repeat_delay: -0.1}"},
		{"zero rate", "input: {repeat_rate: 0}"},
		{"unknown randomizer", "randomizer: fair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("board: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a path", func(t *testing.T) {
		t.Setenv(config.EnvPath, "")
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("path from the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blockfall.yaml")
		require.NoError(t, os.WriteFile(path, []byte("board: {width: 8, height: 16}\n"), 0o644))
		t.Setenv(config.EnvPath, path)

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Board.Width)
		assert.Equal(t, 16, cfg.Board.Height)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestSessionFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Board = config.BoardConfig{Width: 8, Height: 16}
	cfg.Speed.SpeedFactor = 0
	cfg.Seed = 5

	var landed int
	s := game.NewSession(cfg.Drawer(), cfg.SessionOptions(game.WithHooks(game.Hooks{
		OnLand: func(game.LandEvent) { landed++ },
	}))...)

	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 16, s.Height())
	assert.Equal(t, 0.5, s.DropInterval())

	s.Apply(game.HardDrop)
	s.Tick(0)
	assert.Equal(t, 1, landed)
}

func TestDrawerIsSeeded(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Randomizer = config.RandomizerBag

	a, b := cfg.Drawer(), cfg.Drawer()
	for i := 0; i < 21; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}

	seen := make(map[piece.Type]bool)
	for i := 0; i < piece.Count; i++ {
		seen[a.Draw()] = true
	}
	assert.Len(t, seen, piece.Count)
}

func TestRepeater(t *testing.T) {
	r := config.Default().Repeater()

	assert.Equal(t, 0.17, r.Delay)
	assert.Equal(t, 0.05, r.Rate)
}
