// Package game implements a falling-block session: the active and next piece, intent handling,
// the timed descent, landing, line clears, scoring and level progression.
package game

import (
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
)

// LandEvent describes a piece that has just been merged into the board.
type LandEvent struct {
	Piece      piece.Type
	Lines      int
	Award      int
	Score      int
	Level      int
	TotalLines int
}

// Summary is the final tally of a finished game.
type Summary struct {
	Score int
	Level int
	Lines int
}

// Hooks are called after the tick in which the event happened has finished.
type Hooks struct {
	OnLand     func(LandEvent)
	OnGameOver func(Summary)
}

// Options configures a Session.
type Options struct {
	Width        int
	Height       int
	BaseInterval float64
	SpeedFactor  float64
	Catalog      *piece.Catalog
	Hooks        Hooks
}

type Option func(*Options)

func WithBoardSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithSpeed overrides the speed curve constants.
func WithSpeed(baseInterval, speedFactor float64) Option {
	return func(o *Options) {
		o.BaseInterval = baseInterval
		o.SpeedFactor = speedFactor
	}
}

func WithCatalog(c *piece.Catalog) Option {
	return func(o *Options) {
		o.Catalog = c
	}
}

func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Grid   [][]board.Cell
	Active piece.Piece
	Next   piece.Piece
	Ghost  piece.Piece
	Score  int
	Level  int
	Lines  int
	State  State
}

// Session is a single game. It is not safe for concurrent use; one driver loop owns it and
// calls Apply and Tick once per frame.
type Session struct {
	opts      Options
	drawer    Drawer
	scheduler *engine.Scheduler[Session]

	board  *board.Board
	active piece.Piece
	next   piece.Piece

	score int
	level int
	lines int
	state State

	accumulator float64
	resting     bool
	landed      bool
}

// NewSession starts a game. drawer picks every piece type; a nil drawer is replaced by a
// uniform drawer seeded from the clock.
func NewSession(drawer Drawer, opts ...Option) *Session {
	o := Options{
		Width:        10,
		Height:       20,
		BaseInterval: BaseInterval,
		SpeedFactor:  SpeedFactor,
		Catalog:      piece.Standard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if drawer == nil {
		drawer = NewUniformDrawer(uint64(time.Now().UnixNano()))
	}

	s := &Session{
		opts:   o,
		drawer: drawer,
	}

	s.scheduler = engine.NewScheduler(s)
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&LockSystem{})
	s.scheduler.Register(&SpawnSystem{})

	s.reset()
	return s
}

func (s *Session) reset() {
	s.board = board.New(s.opts.Width, s.opts.Height)
	s.score = 0
	s.level = 1
	s.lines = 0
	s.state = Falling
	s.accumulator = 0
	s.resting = false
	s.landed = false

	s.active = s.spawn(s.draw())
	s.next = s.spawn(s.draw())

	if s.collides(s.active) {
		s.state = GameOver
	}
}

// draw asks the drawer for a type and wraps anything outside the catalog into range.
func (s *Session) draw() piece.Type {
	t := s.drawer.Draw()
	if !t.Valid() {
		t = piece.Type(((int(t) % piece.Count) + piece.Count) % piece.Count)
	}
	return t
}

// spawn returns a piece of type t in rotation 0 at the spawn column.
func (s *Session) spawn(t piece.Type) piece.Piece {
	return piece.New(s.opts.Catalog.Shape(t), piece.Point{X: s.opts.Width/2 - 1, Y: 0})
}

func (s *Session) collides(p piece.Piece) bool {
	return s.board.Collides(p.Anchor, p.State())
}

// try commits candidate as the active piece if it is legal and differs from the current one.
func (s *Session) try(candidate piece.Piece) bool {
	if candidate == s.active || s.collides(candidate) {
		return false
	}
	s.active = candidate
	return true
}

// dropped returns p moved down until the next step would collide.
func (s *Session) dropped(p piece.Piece) piece.Piece {
	for {
		below := p.Moved(0, 1)
		if s.collides(below) {
			return p
		}
		p = below
	}
}

// Apply handles one intent and reports whether it changed the session. Illegal or
// out-of-phase intents are ignored.
func (s *Session) Apply(intent Intent) bool {
	switch s.state {
	case GameOver:
		if intent != Restart {
			return false
		}
		s.reset()
		return true
	case Paused:
		if intent != TogglePause {
			return false
		}
		s.state = Falling
		return true
	}

	switch intent {
	case MoveLeft:
		return s.try(s.active.Moved(-1, 0))
	case MoveRight:
		return s.try(s.active.Moved(1, 0))
	case SoftDrop:
		return s.try(s.active.Moved(0, 1))
	case Rotate:
		return s.try(s.active.Rotated())
	case HardDrop:
		s.active = s.dropped(s.active)
		// The next tick lands the piece without waiting for the interval.
		s.accumulator = s.DropInterval()
		return true
	case TogglePause:
		s.state = Paused
		return true
	}

	return false
}

// Tick advances the session clock by elapsed seconds and reports whether a piece landed.
// Negative and NaN elapsed times count as zero.
func (s *Session) Tick(elapsed float64) bool {
	// NaN fails every comparison, so test for the positive case.
	if !(elapsed > 0) {
		elapsed = 0
	}
	s.landed = false
	s.scheduler.Once(elapsed)
	return s.landed
}

// DropInterval returns the current seconds between automatic descents.
func (s *Session) DropInterval() float64 {
	return DropInterval(s.level, s.opts.BaseInterval, s.opts.SpeedFactor)
}

func (s *Session) State() State { return s.state }

func (s *Session) IsOver() bool { return s.state == GameOver }

func (s *Session) IsPaused() bool { return s.state == Paused }

func (s *Session) Score() int { return s.score }

func (s *Session) Level() int { return s.level }

// Lines returns the total number of rows cleared this game.
func (s *Session) Lines() int { return s.lines }

func (s *Session) Active() piece.Piece { return s.active }

func (s *Session) Next() piece.Piece { return s.next }

// Ghost returns the active piece at the row a hard drop would reach.
func (s *Session) Ghost() piece.Piece {
	return s.dropped(s.active)
}

func (s *Session) Width() int { return s.board.Width() }

func (s *Session) Height() int { return s.board.Height() }

// Cell returns the landed cell at (x, y).
func (s *Session) Cell(x, y int) board.Cell { return s.board.At(x, y) }

// Grid returns a copy of the landed cells, indexed [y][x].
func (s *Session) Grid() [][]board.Cell { return s.board.Rows() }

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:   s.board.Rows(),
		Active: s.active,
		Next:   s.next,
		Ghost:  s.Ghost(),
		Score:  s.score,
		Level:  s.level,
		Lines:  s.lines,
		State:  s.state,
	}
}

// Stats returns timing statistics for the systems that run each tick.
func (s *Session) Stats() *engine.SchedulerStats {
	return s.scheduler.Stats()
}

// Ticks returns how many times Tick has been called over the session's lifetime.
func (s *Session) Ticks() int64 {
	return s.scheduler.Frames()
}
