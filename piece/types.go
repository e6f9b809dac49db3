// Package piece defines the seven tetromino shapes, their rotation states, and the falling
// piece that moves over a board.
package piece

// Type identifies one of the seven tetrominoes.
type Type int

const (
	I Type = iota
	J
	L
	O
	S
	Z
	T
)

// Count is the number of piece types in a catalog.
const Count = 7

var typeNames = [Count]string{"I", "J", "L", "O", "S", "Z", "T"}

// Valid reports whether t is one of the seven types.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < Count
}

func (t Type) String() string {
	if !t.Valid() {
		return "?"
	}
	return typeNames[t]
}

// Tag is the visual tag a piece leaves on the cells it occupies.
// The zero value means "no tag" and is never used by a catalog entry.
type Tag uint8

const (
	NoTag Tag = iota
	SkyBlue
	DarkBlue
	Orange
	Yellow
	Green
	Red
	Purple
)

var tagNames = [...]string{"none", "skyblue", "darkblue", "orange", "yellow", "green", "red", "purple"}

func (t Tag) String() string {
	if int(t) >= len(tagNames) {
		return "tag?"
	}
	return tagNames[t]
}

// Offset is a cell position relative to a piece anchor.
type Offset struct {
	DX, DY int
}

// Point is an absolute grid position. Y grows downward; row 0 is the top of the board.
type Point struct {
	X, Y int
}

// Add returns the point displaced by o.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// State is one rotation of a tetromino: exactly four cell offsets.
type State [4]Offset
