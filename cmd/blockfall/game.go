package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// Game implements ebiten.Game. It is the driver loop: it turns key state into intents,
// advances the session clock, and draws the session's snapshot.
type Game struct {
	session  *game.Session
	repeater *game.Repeater

	imgui     *debugui_ebiten.ImguiBackend
	inspector *debugui.Inspector
}

func (g *Game) screenSize() (int, int) {
	w := BoardX*2 + g.session.Width()*CellSize + SidePanel
	h := BoardY*2 + g.session.Height()*CellSize
	return w, h
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	g.handleInput(dt)
	g.session.Tick(dt)

	if g.inspector != nil {
		g.inspector.Render(g.session, float32(dt))
	}
	return nil
}

func (g *Game) handleInput(dt float64) {
	s := g.session

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.Apply(game.Restart) {
		g.repeater.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Apply(game.TogglePause)
	}

	g.repeater.Drive(s, game.MoveLeft, ebiten.IsKeyPressed(ebiten.KeyArrowLeft), dt)
	g.repeater.Drive(s, game.MoveRight, ebiten.IsKeyPressed(ebiten.KeyArrowRight), dt)
	g.repeater.Drive(s, game.SoftDrop, ebiten.IsKeyPressed(ebiten.KeyArrowDown), dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.Apply(game.Rotate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Apply(game.HardDrop)
	}
}

func drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	sx := float32(BoardX + x*CellSize)
	sy := float32(BoardY + y*CellSize)
	vector.DrawFilledRect(screen, sx, sy, CellSize, CellSize, c, false)
	vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, gridColor, false)
}

func drawPiece(screen *ebiten.Image, p piece.Piece, c color.Color) {
	for _, cell := range p.Cells() {
		drawCell(screen, cell.X, cell.Y, c)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	width, height := g.session.Width(), g.session.Height()

	screen.Fill(backgroundColor)
	vector.DrawFilledRect(screen, BoardX, BoardY, float32(width*CellSize), float32(height*CellSize), boardColor, false)

	for y, row := range snap.Grid {
		for x, cell := range row {
			if cell.Filled() {
				drawCell(screen, x, y, tagColor(cell.Tag()))
			}
		}
	}

	if snap.State != game.GameOver {
		drawPiece(screen, snap.Ghost, ghostColor)
		drawPiece(screen, snap.Active, tagColor(snap.Active.Tag()))
	}

	panelX := BoardX*2 + width*CellSize
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, BoardY)
	preview := snap.Next
	preview.Anchor = piece.Point{X: width + 2, Y: 1}
	drawPiece(screen, preview, tagColor(preview.Tag()))

	info := fmt.Sprintf("SCORE %d\nLEVEL %d\nLINES %d", snap.Score, snap.Level, snap.Lines)
	ebitenutil.DebugPrintAt(screen, info, panelX, BoardY+6*CellSize)
	ebitenutil.DebugPrintAt(screen, "<- -> move\nUP rotate\nDOWN soft drop\nSPACE hard drop\nP pause  R restart", panelX, BoardY+9*CellSize)

	switch snap.State {
	case game.Paused:
		g.drawBanner(screen, "PAUSED - press P to resume")
	case game.GameOver:
		g.drawBanner(screen, "GAME OVER - press R to restart")
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, text string) {
	width, height := g.session.Width(), g.session.Height()
	y := BoardY + height*CellSize/2 - 20
	vector.DrawFilledRect(screen, BoardX, float32(y), float32(width*CellSize), 40, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, text, BoardX+10, y+12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.screenSize()
}
