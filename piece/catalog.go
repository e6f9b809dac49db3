package piece

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every error NewCatalog returns.
var ErrMalformed = errors.New("malformed piece definition")

// Definition describes one piece type before validation.
type Definition struct {
	Type   Type
	Tag    Tag
	States [][]Offset
}

// Shape is the validated, immutable rotation table of a piece type.
type Shape struct {
	typ    Type
	tag    Tag
	states []State
}

func (s *Shape) Type() Type { return s.typ }

func (s *Shape) Tag() Tag { return s.tag }

// NumStates returns how many distinct rotation states the shape has (1, 2 or 4).
func (s *Shape) NumStates() int { return len(s.states) }

// State returns rotation state i. i must be in [0, NumStates()).
func (s *Shape) State(i int) State { return s.states[i] }

// Catalog maps each of the seven piece types to its shape.
type Catalog struct {
	shapes [Count]*Shape
}

// NewCatalog validates defs and builds a catalog from them. defs must contain every type
// exactly once, each with a non-zero tag and 1, 2 or 4 distinct states of four distinct offsets.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) != Count {
		return nil, fmt.Errorf("%w: want %d definitions, got %d", ErrMalformed, Count, len(defs))
	}

	c := &Catalog{}
	for _, def := range defs {
		if def.Type < 0 || int(def.Type) >= Count {
			return nil, fmt.Errorf("%w: unknown type %d", ErrMalformed, int(def.Type))
		}
		if c.shapes[def.Type] != nil {
			return nil, fmt.Errorf("%w: type %s defined twice", ErrMalformed, def.Type)
		}
		shape, err := newShape(def)
		if err != nil {
			return nil, err
		}
		c.shapes[def.Type] = shape
	}

	return c, nil
}

func newShape(def Definition) (*Shape, error) {
	if def.Tag == NoTag {
		return nil, fmt.Errorf("%w: type %s has no tag", ErrMalformed, def.Type)
	}

	switch len(def.States) {
	case 1, 2, 4:
	default:
		return nil, fmt.Errorf("%w: type %s has %d rotation states", ErrMalformed, def.Type, len(def.States))
	}

	shape := &Shape{
		typ:    def.Type,
		tag:    def.Tag,
		states: make([]State, 0, len(def.States)),
	}

	seen := make(map[State]bool, len(def.States))
	for i, offsets := range def.States {
		if len(offsets) != len(State{}) {
			return nil, fmt.Errorf("%w: type %s state %d has %d cells", ErrMalformed, def.Type, i, len(offsets))
		}

		var state State
		copy(state[:], offsets)
		if hasDuplicate(state) {
			return nil, fmt.Errorf("%w: type %s state %d repeats a cell", ErrMalformed, def.Type, i)
		}

		key := normalize(state)
		if seen[key] {
			return nil, fmt.Errorf("%w: type %s state %d repeats an earlier state", ErrMalformed, def.Type, i)
		}
		seen[key] = true

		shape.states = append(shape.states, state)
	}

	return shape, nil
}

func hasDuplicate(s State) bool {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i] == s[j] {
				return true
			}
		}
	}
	return false
}

// normalize sorts the offsets so that two states listing the same cells compare equal.
func normalize(s State) State {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return s
}

func less(a, b Offset) bool {
	if a.DY != b.DY {
		return a.DY < b.DY
	}
	return a.DX < b.DX
}

// Shape returns the shape for t. t must be one of the seven defined types.
func (c *Catalog) Shape(t Type) *Shape {
	return c.shapes[t]
}

var standard = mustCatalog(standardDefinitions)

// Standard returns the classic seven-piece catalog.
func Standard() *Catalog {
	return standard
}

func mustCatalog(defs []Definition) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

var standardDefinitions = []Definition{
	{Type: I, Tag: SkyBlue, States: [][]Offset{
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	}},
	{Type: J, Tag: DarkBlue, States: [][]Offset{
		{{0, 0}, {0, 1}, {0, 2}, {-1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	}},
	{Type: L, Tag: Orange, States: [][]Offset{
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
	}},
	{Type: O, Tag: Yellow, States: [][]Offset{
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}},
	{Type: S, Tag: Green, States: [][]Offset{
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
	}},
	{Type: Z, Tag: Red, States: [][]Offset{
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	}},
	{Type: T, Tag: Purple, States: [][]Offset{
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
	}},
}
