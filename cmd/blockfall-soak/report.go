package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Sessions   int
	Seed       uint64
	Tick       time.Duration
	Randomizer string

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Runs           []RunResult
	Systems        []engine.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type RunResult struct {
	ID        string
	Games     int
	BestScore int
	Score     int
	Lines     int
	Pieces    int
}

// Stats keeps running aggregates so a long soak does not hold every sample.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
	Count int64
}

func (s *Stats) Add(sample time.Duration) {
	if s.Count == 0 || sample < s.Min {
		s.Min = sample
	}
	s.Max = max(s.Max, sample)
	s.Total += sample
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

// addSystems folds one session's scheduler stats into the report, matching systems by name.
func (r *Report) addSystems(stats *engine.SchedulerStats) {
	for _, sys := range stats.Systems {
		idx := -1
		for i := range r.Systems {
			if r.Systems[i].Name == sys.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			r.Systems = append(r.Systems, sys)
			continue
		}

		agg := &r.Systems[idx]
		if sys.ExecutionCount == 0 {
			continue
		}
		if agg.ExecutionCount == 0 || sys.MinDuration < agg.MinDuration {
			agg.MinDuration = sys.MinDuration
		}
		agg.MaxDuration = max(agg.MaxDuration, sys.MaxDuration)
		agg.TotalDuration += sys.TotalDuration
		agg.ExecutionCount += sys.ExecutionCount
		agg.AvgDuration = agg.TotalDuration / time.Duration(agg.ExecutionCount)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Base Seed:** {{.Seed}}
- **Simulated Tick:** {{.Tick}}
- **Randomizer:** {{.Randomizer}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Tick Systems
{{range .Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{end}}
## Sessions
{{range .Runs}}- {{.ID}}: {{.Games}} games, best {{.BestScore}}, current {{.Score}}, {{.Lines}} lines over {{.Pieces}} pieces
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
