// Package debugui draws a Dear ImGui inspector over a running session: its counters, the
// piece queue, frame times, and per-system tick timings.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

// Inspector keeps a rolling frame time history and renders the inspector window.
type Inspector struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	frames        int
}

func NewInspector(historyFrames int) *Inspector {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &Inspector{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds one frame duration, in seconds, to the history.
func (in *Inspector) Record(deltaTime float32) {
	in.frameHistory[in.frameIndex] = deltaTime * 1000.0
	in.frameIndex = (in.frameIndex + 1) % in.historyFrames
	if in.frames < in.historyFrames {
		in.frames++
	}
}

// AverageFrameTime returns the mean of the recorded frames in milliseconds.
func (in *Inspector) AverageFrameTime() float32 {
	if in.frames == 0 {
		return 0
	}
	var total float32
	for _, ft := range in.frameHistory[:in.frames] {
		total += ft
	}
	return total / float32(in.frames)
}

// SessionLines returns the text lines shown at the top of the inspector.
func SessionLines(s *game.Session) []string {
	active := s.Active()
	return []string{
		fmt.Sprintf("State: %s", s.State()),
		fmt.Sprintf("Score: %d", s.Score()),
		fmt.Sprintf("Level: %d", s.Level()),
		fmt.Sprintf("Lines: %d", s.Lines()),
		fmt.Sprintf("Drop Interval: %.3f s", s.DropInterval()),
		fmt.Sprintf("Active: %s rot %d at (%d, %d)", active.Type(), active.Rotation, active.Anchor.X, active.Anchor.Y),
		fmt.Sprintf("Next: %s", s.Next().Type()),
		fmt.Sprintf("Ticks: %d", s.Ticks()),
	}
}

// SystemRows formats scheduler stats as table rows: name, executions, avg, max.
func SystemRows(stats *engine.SchedulerStats) [][4]string {
	rows := make([][4]string, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		rows = append(rows, [4]string{
			sys.Name,
			fmt.Sprintf("%d", sys.ExecutionCount),
			sys.AvgDuration.String(),
			sys.MaxDuration.String(),
		})
	}
	return rows
}

// Render draws the inspector window for s. It must be called between the ImGui backend's
// BeginFrame and EndFrame.
func (in *Inspector) Render(s *game.Session, deltaTime float32) {
	in.Record(deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)

	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range SessionLines(s) {
		imgui.Text(line)
	}

	avgFrameTime := in.AverageFrameTime()
	imgui.Separator()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))

	if imgui.TreeNodeStr("Tick Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, row := range SystemRows(s.Stats()) {
				imgui.TableNextRow()
				for _, cell := range row {
					imgui.TableNextColumn()
					imgui.Text(cell)
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
