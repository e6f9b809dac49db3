package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
)

const (
	CellSize    = 30
	BoardX      = 40
	BoardY      = 40
	SidePanel   = 220
	InspectorW  = 340
	windowTitle = "Blockfall"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML tuning file (defaults to $BLOCKFALL_CONFIG).")
	debug := flag.Bool("debug", false, "Show the session inspector.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	hooks := game.Hooks{
		OnLand: func(e game.LandEvent) {
			if e.Lines > 0 {
				log.Printf("Cleared %d lines (+%d), score %d, level %d", e.Lines, e.Award, e.Score, e.Level)
			}
		},
		OnGameOver: func(sum game.Summary) {
			log.Printf("Game over: score %d, level %d, %d lines", sum.Score, sum.Level, sum.Lines)
		},
	}

	g := &Game{
		session:  game.NewSession(cfg.Drawer(), cfg.SessionOptions(game.WithHooks(hooks))...),
		repeater: cfg.Repeater(),
	}

	width, height := g.screenSize()
	if *debug {
		g.imgui = debugui_ebiten.NewImguiBackend(windowTitle, width+InspectorW, height)
		g.inspector = debugui.NewInspector(120)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}

	log.Printf("Starting %dx%d board with the %s randomizer", cfg.Board.Width, cfg.Board.Height, cfg.Randomizer)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
