package piece

// Piece is a shape at a rotation and anchor position. The anchor may be an illegal position;
// legality is the board's concern.
type Piece struct {
	Shape    *Shape
	Rotation int
	Anchor   Point
}

// New returns a piece of shape s in rotation state 0 at anchor.
func New(s *Shape, anchor Point) Piece {
	return Piece{Shape: s, Anchor: anchor}
}

func (p Piece) Type() Type { return p.Shape.Type() }

func (p Piece) Tag() Tag { return p.Shape.Tag() }

// State returns the offsets of the current rotation.
func (p Piece) State() State {
	return p.Shape.State(p.Rotation)
}

// Cells returns the absolute grid positions the piece covers.
func (p Piece) Cells() [4]Point {
	var cells [4]Point
	for i, o := range p.State() {
		cells[i] = p.Anchor.Add(o)
	}
	return cells
}

// Moved returns a copy of p shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor.X += dx
	p.Anchor.Y += dy
	return p
}

// Rotated returns a copy of p advanced to its next rotation state, wrapping around.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % p.Shape.NumStates()
	return p
}
