package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
)

// Intents a soak player may send. Restart is issued by the loop itself on game over.
var soakIntents = []game.Intent{
	game.MoveLeft,
	game.MoveRight,
	game.SoftDrop,
	game.HardDrop,
	game.Rotate,
	game.TogglePause,
}

type run struct {
	ID      uuid.UUID
	session *game.Session
	player  *rand.Rand

	Games     int
	BestScore int
	Lines     int
	Pieces    int
}

func newRun(cfg config.Config, seed uint64) *run {
	r := &run{
		ID:     uuid.New(),
		player: rand.New(rand.NewPCG(seed, ^seed)),
	}

	cfg.Seed = seed
	hooks := game.Hooks{
		OnLand: func(e game.LandEvent) {
			r.Pieces++
			r.Lines += e.Lines
		},
		OnGameOver: func(sum game.Summary) {
			r.Games++
			r.BestScore = max(r.BestScore, sum.Score)
		},
	}
	r.session = game.NewSession(cfg.Drawer(), cfg.SessionOptions(game.WithHooks(hooks))...)
	return r
}

// step sends at most one random intent and advances the clock by dt.
func (r *run) step(dt float64, intentChance float64) {
	s := r.session
	if s.IsOver() {
		s.Apply(game.Restart)
		return
	}

	if r.player.Float64() < intentChance {
		intent := soakIntents[r.player.IntN(len(soakIntents))]
		// Pausing is immediately undone so the run keeps making progress.
		if intent == game.TogglePause {
			s.Apply(intent)
		}
		s.Apply(intent)
	}

	s.Tick(dt)
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	sessions := flag.Int("sessions", 8, "The number of concurrent sessions to drive.")
	seed := flag.Uint64("seed", 0, "Base seed for drawers and players (0 picks one from the clock).")
	tick := flag.Duration("tick", time.Second/60, "Simulated time advanced per tick.")
	intentChance := flag.Float64("intent-chance", 0.3, "Probability of sending an intent before each tick.")
	configPath := flag.String("config", "", "Path to a YAML tuning file (defaults to $BLOCKFALL_CONFIG).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *sessions < 1 {
		log.Fatalf("-sessions must be at least 1, got %d", *sessions)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	log.Printf("Starting soak with %d sessions, base seed %d...", *sessions, baseSeed)

	runs := make([]*run, *sessions)
	for i := range runs {
		runs[i] = newRun(cfg, baseSeed+uint64(i))
		log.Printf("Session %s seeded with %d", runs[i].ID, baseSeed+uint64(i))
	}

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           baseSeed,
		Tick:           *tick,
		Randomizer:     cfg.Randomizer,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := tick.Seconds()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for _, r := range runs {
				tickStart := time.Now()
				r.step(dt, *intentChance)
				report.TickTime.Add(time.Since(tickStart))
			}
			report.TotalTicks += int64(len(runs))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, r := range runs {
		report.Runs = append(report.Runs, RunResult{
			ID:        r.ID.String(),
			Games:     r.Games,
			BestScore: r.BestScore,
			Score:     r.session.Score(),
			Lines:     r.Lines,
			Pieces:    r.Pieces,
		})
		report.addSystems(r.session.Stats())
	}

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
