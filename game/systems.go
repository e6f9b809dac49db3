package game

import "github.com/plus3/blockfall/engine"

// GravitySystem accumulates elapsed time and moves the active piece down one row each time
// the drop interval is reached. A piece that cannot move down is marked as resting.
type GravitySystem struct{}

func (g *GravitySystem) Execute(frame *engine.Frame[Session]) {
	s := frame.State
	if s.state != Falling {
		return
	}

	s.accumulator += frame.DeltaTime
	if s.accumulator < s.DropInterval() {
		return
	}
	s.accumulator = 0

	if !s.try(s.active.Moved(0, 1)) {
		s.resting = true
	}
}

// LockSystem merges a resting piece into the board, clears completed rows and updates
// score, line count and level.
type LockSystem struct{}

func (l *LockSystem) Execute(frame *engine.Frame[Session]) {
	s := frame.State
	if !s.resting {
		return
	}
	s.resting = false

	s.board.Place(s.active)
	lines := s.board.ClearCompletedRows()

	award := ScoreFor(lines, s.level)
	s.lines += lines
	s.score += award
	s.level = LevelFor(s.lines)
	s.landed = true

	if onLand := s.opts.Hooks.OnLand; onLand != nil {
		event := LandEvent{
			Piece:      s.active.Type(),
			Lines:      lines,
			Award:      award,
			Score:      s.score,
			Level:      s.level,
			TotalLines: s.lines,
		}
		frame.Commands.Defer(func() { onLand(event) })
	}
}

// SpawnSystem promotes the next piece after a landing, draws a new next piece and ends the
// game if the promoted piece has no room at the spawn position.
type SpawnSystem struct{}

func (sp *SpawnSystem) Execute(frame *engine.Frame[Session]) {
	s := frame.State
	if !s.landed {
		return
	}

	s.active = s.spawn(s.next.Type())
	s.next = s.spawn(s.draw())

	if !s.collides(s.active) {
		return
	}
	s.state = GameOver

	if onGameOver := s.opts.Hooks.OnGameOver; onGameOver != nil {
		summary := Summary{Score: s.score, Level: s.level, Lines: s.lines}
		frame.Commands.Defer(func() { onGameOver(summary) })
	}
}
