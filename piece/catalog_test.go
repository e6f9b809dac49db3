package piece_test

import (
	"testing"

	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardCatalog(t *testing.T) {
	catalog := piece.Standard()

	wantStates := map[piece.Type]int{
		piece.I: 2,
		piece.J: 4,
		piece.L: 4,
		piece.O: 1,
		piece.S: 2,
		piece.Z: 2,
		piece.T: 4,
	}

	tags := make(map[piece.Tag]bool)
	for typ := piece.Type(0); typ < piece.Count; typ++ {
		t.Run(typ.String(), func(t *testing.T) {
			shape := catalog.Shape(typ)
			require.NotNil(t, shape)
			assert.Equal(t, typ, shape.Type())
			assert.Equal(t, wantStates[typ], shape.NumStates())
			assert.NotEqual(t, piece.NoTag, shape.Tag())

			for i := 0; i < shape.NumStates(); i++ {
				cells := make(map[piece.Offset]bool)
				for _, o := range shape.State(i) {
					cells[o] = true
				}
				assert.Len(t, cells, 4, "state %d must cover four distinct cells", i)
			}
		})
		tags[catalog.Shape(typ).Tag()] = true
	}

	assert.Len(t, tags, piece.Count, "every type has its own tag")
}

func validDefinitions() []piece.Definition {
	square := [][]piece.Offset{{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 0, DY: 1}, {DX: 1, DY: 1}}}
	defs := make([]piece.Definition, 0, piece.Count)
	for typ := piece.Type(0); typ < piece.Count; typ++ {
		defs = append(defs, piece.Definition{Type: typ, Tag: piece.Tag(typ + 1), States: square})
	}
	return defs
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := piece.NewCatalog(validDefinitions())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func([]piece.Definition) []piece.Definition
	}{
		{"missing type", func(d []piece.Definition) []piece.Definition {
			return d[:piece.Count-1]
		}},
		{"duplicate type", func(d []piece.Definition) []piece.Definition {
			d[1].Type = d[0].Type
			return d
		}},
		{"unknown type", func(d []piece.Definition) []piece.Definition {
			d[2].Type = piece.Count
			return d
		}},
		{"no tag", func(d []piece.Definition) []piece.Definition {
			d[3].Tag = piece.NoTag
			return d
		}},
		{"three cells", func(d []piece.Definition) []piece.Definition {
			d[0].States = [][]piece.Offset{{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 2, DY: 0}}}
			return d
		}},
		{"five cells", func(d []piece.Definition) []piece.Definition {
			d[0].States = [][]piece.Offset{{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 2, DY: 0}, {DX: 3, DY: 0}, {DX: 4, DY: 0}}}
			return d
		}},
		{"repeated cell", func(d []piece.Definition) []piece.Definition {
			d[0].States = [][]piece.Offset{{{DX: 0, DY: 0}, {DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 2, DY: 0}}}
			return d
		}},
		{"three states", func(d []piece.Definition) []piece.Definition {
			d[0].States = [][]piece.Offset{
				{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 2, DY: 0}, {DX: 3, DY: 0}},
				{{DX: 0, DY: 0}, {DX: 0, DY: 1}, {DX: 0, DY: 2}, {DX: 0, DY: 3}},
				{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 1, DY: 1}, {DX: 2, DY: 1}},
			}
			return d
		}},
		{"repeated state in another order", func(d []piece.Definition) []piece.Definition {
			d[0].States = [][]piece.Offset{
				{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 2, DY: 0}, {DX: 3, DY: 0}},
				{{DX: 3, DY: 0}, {DX: 2, DY: 0}, {DX: 1, DY: 0}, {DX: 0, DY: 0}},
			}
			return d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := piece.NewCatalog(tt.mutate(validDefinitions()))
			assert.ErrorIs(t, err, piece.ErrMalformed)
		})
	}
}

func TestPieceRotationWraps(t *testing.T) {
	catalog := piece.Standard()

	for typ := piece.Type(0); typ < piece.Count; typ++ {
		shape := catalog.Shape(typ)
		p := piece.New(shape, piece.Point{X: 4, Y: 0})
		for i := 0; i < shape.NumStates(); i++ {
			p = p.Rotated()
		}
		assert.Equal(t, 0, p.Rotation, "%s returns to state 0 after a full turn", typ)
	}
}

func TestPieceCells(t *testing.T) {
	p := piece.New(piece.Standard().Shape(piece.O), piece.Point{X: 4, Y: 0})

	assert.ElementsMatch(t, []piece.Point{{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 0}, {X: 5, Y: 1}}, p.Cells())

	moved := p.Moved(-1, 2)
	assert.Equal(t, piece.Point{X: 3, Y: 2}, moved.Anchor)
	assert.Equal(t, piece.Point{X: 4, Y: 0}, p.Anchor, "Moved does not mutate the receiver")
}

func TestTypeValid(t *testing.T) {
	for typ := piece.Type(0); typ < piece.Count; typ++ {
		assert.True(t, typ.Valid(), typ.String())
	}
	assert.False(t, piece.Type(-1).Valid())
	assert.False(t, piece.Type(piece.Count).Valid())
	assert.Equal(t, "?", piece.Type(piece.Count).String())
}
