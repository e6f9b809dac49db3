package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectorAverage(t *testing.T) {
	in := debugui.NewInspector(4)
	assert.Zero(t, in.AverageFrameTime())

	in.Record(0.010)
	in.Record(0.020)
	assert.InDelta(t, 15.0, in.AverageFrameTime(), 1e-3, "only recorded frames count")

	for i := 0; i < 10; i++ {
		in.Record(0.004)
	}
	assert.InDelta(t, 4.0, in.AverageFrameTime(), 1e-3, "old frames roll out of the history")
}

func TestSessionLines(t *testing.T) {
	s := game.NewSession(game.DrawerFunc(func() piece.Type { return piece.T }))
	s.Tick(0.01)

	lines := debugui.SessionLines(s)
	require.NotEmpty(t, lines)
	assert.Equal(t, "State: falling", lines[0])
	assert.Contains(t, lines, "Active: T rot 0 at (4, 0)")
	assert.Contains(t, lines, "Ticks: 1")
}

func TestSystemRows(t *testing.T) {
	rows := debugui.SystemRows(&engine.SchedulerStats{
		SystemCount: 1,
		Systems: []engine.SystemStats{{
			Name:           "GravitySystem",
			ExecutionCount: 3,
			AvgDuration:    2 * time.Microsecond,
			MaxDuration:    5 * time.Microsecond,
		}},
	})

	assert.Equal(t, [][4]string{{"GravitySystem", "3", "2µs", "5µs"}}, rows)
}
