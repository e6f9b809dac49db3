package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg, "no samples")

	for _, d := range []time.Duration{3, 1, 2} {
		s.Add(d)
	}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
	assert.Equal(t, time.Duration(6), s.Total)
	assert.Equal(t, int64(3), s.Count)
}

func TestAddSystemsMergesByName(t *testing.T) {
	r := &Report{}
	r.addSystems(&engine.SchedulerStats{Systems: []engine.SystemStats{
		{Name: "GravitySystem", ExecutionCount: 2, MinDuration: 4, MaxDuration: 8, TotalDuration: 12},
		{Name: "LockSystem"},
	}})
	r.addSystems(&engine.SchedulerStats{Systems: []engine.SystemStats{
		{Name: "GravitySystem", ExecutionCount: 2, MinDuration: 2, MaxDuration: 6, TotalDuration: 8},
		{Name: "LockSystem", ExecutionCount: 1, MinDuration: 5, MaxDuration: 5, TotalDuration: 5},
	}})

	require.Len(t, r.Systems, 2)
	gravity := r.Systems[0]
	assert.Equal(t, int64(4), gravity.ExecutionCount)
	assert.Equal(t, time.Duration(2), gravity.MinDuration)
	assert.Equal(t, time.Duration(8), gravity.MaxDuration)
	assert.Equal(t, time.Duration(5), gravity.AvgDuration)

	lock := r.Systems[1]
	assert.Equal(t, int64(1), lock.ExecutionCount)
	assert.Equal(t, time.Duration(5), lock.MinDuration)
}

func TestRunRestartsAfterGameOver(t *testing.T) {
	cfg := config.Default()
	cfg.Board = config.BoardConfig{Width: 4, Height: 4}

	r := newRun(cfg, 7)
	for i := 0; i < 2000 && r.Games < 2; i++ {
		r.step(0.25, 1)
	}

	assert.GreaterOrEqual(t, r.Games, 2)
	assert.Positive(t, r.Pieces)
}

func TestGenerate(t *testing.T) {
	r := &Report{
		Duration:   time.Second,
		Sessions:   1,
		Seed:       3,
		Tick:       time.Second / 60,
		Randomizer: config.RandomizerBag,
		Runs:       []RunResult{{ID: "abc", Games: 2, BestScore: 300, Lines: 3, Pieces: 40}},
		Systems:    []engine.SystemStats{{Name: "SpawnSystem", ExecutionCount: 9}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Soak Report")
	assert.Contains(t, out, "- **Randomizer:** bag")
	assert.Contains(t, out, "**SpawnSystem:** 9 runs")
	assert.Contains(t, out, "- abc: 2 games, best 300")
}
