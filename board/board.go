// Package board holds the fixed-size grid of landed cells and the collision and
// line-clear rules that operate on it.
package board

import (
	"strings"

	"github.com/plus3/blockfall/piece"
)

// Cell is one grid square: Empty, or the tag of the piece that landed there.
type Cell piece.Tag

// Empty is the zero Cell.
const Empty Cell = 0

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool { return c != Empty }

// Tag returns the visual tag of the piece that filled the cell.
func (c Cell) Tag() piece.Tag { return piece.Tag(c) }

// Board is a width x height grid of cells. Its dimensions never change.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// New returns an empty board. It panics if either dimension is not positive.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}

	b := &Board{
		width:  width,
		height: height,
		rows:   make([][]Cell, height),
	}
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y), or Empty when the position is outside the board.
func (b *Board) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// IsOccupied reports whether (x, y) holds a landed cell. Positions outside the board
// are reported as unoccupied.
func (b *Board) IsOccupied(x, y int) bool {
	return b.At(x, y).Filled()
}

// Set writes c at (x, y). Out of range positions are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if b.inBounds(x, y) {
		b.rows[y][x] = c
	}
}

// Collides reports whether any cell of state, placed at anchor, falls outside the board or
// onto an occupied cell. It is the single legality check for moves, rotations and spawns.
func (b *Board) Collides(anchor piece.Point, state piece.State) bool {
	for _, o := range state {
		p := anchor.Add(o)
		if !b.inBounds(p.X, p.Y) {
			return true
		}
		if b.rows[p.Y][p.X].Filled() {
			return true
		}
	}
	return false
}

// Place writes the cells of p into the grid using its tag. Callers only place a piece
// that can no longer move down.
func (b *Board) Place(p piece.Piece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, Cell(p.Tag()))
	}
}

func (b *Board) rowComplete(y int) bool {
	for _, c := range b.rows[y] {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every fully occupied row, shifting the rows above each one down,
// and returns how many rows were removed. After a removal the same row index is examined again
// since a different row has slid into it.
func (b *Board) ClearCompletedRows() int {
	cleared := 0

	for y := b.height - 1; y >= 0; {
		if !b.rowComplete(y) {
			y--
			continue
		}

		removed := b.rows[y]
		copy(b.rows[1:y+1], b.rows[:y])
		clear(removed)
		b.rows[0] = removed

		cleared++
	}

	return cleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.rows {
		clear(row)
	}
}

// Rows returns a copy of the grid, indexed [y][x].
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// String renders the grid with '.' for empty cells and '#' for filled ones, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for _, row := range b.rows {
		for _, c := range row {
			if c.Filled() {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
