package game

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/piece"
)

// Drawer chooses the type of each new piece. It is the only source of randomness in a
// session; tests substitute a fixed sequence. Types outside the seven are wrapped into range
// by the session.
type Drawer interface {
	Draw() piece.Type
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func() piece.Type

func (f DrawerFunc) Draw() piece.Type { return f() }

// UniformDrawer draws every type with equal probability, independently of earlier draws.
type UniformDrawer struct {
	rng *rand.Rand
}

func NewUniformDrawer(seed uint64) *UniformDrawer {
	return &UniformDrawer{rng: newRand(seed)}
}

func (d *UniformDrawer) Draw() piece.Type {
	return piece.Type(d.rng.IntN(piece.Count))
}

// BagDrawer deals the seven types in shuffled rounds, so each type appears exactly once
// in every group of seven consecutive draws.
type BagDrawer struct {
	rng *rand.Rand
	bag []piece.Type
}

func NewBagDrawer(seed uint64) *BagDrawer {
	return &BagDrawer{rng: newRand(seed)}
}

func (d *BagDrawer) Draw() piece.Type {
	if len(d.bag) == 0 {
		d.bag = make([]piece.Type, piece.Count)
		for i := range d.bag {
			d.bag[i] = piece.Type(i)
		}
		d.rng.Shuffle(len(d.bag), func(i, j int) {
			d.bag[i], d.bag[j] = d.bag[j], d.bag[i]
		})
	}

	next := d.bag[0]
	d.bag = d.bag[1:]
	return next
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
