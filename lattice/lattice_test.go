package lattice_test

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/fim/lattice"
	"github.com/timtadh/fim/types/itemset"
)

func node(t *assert.Assertions, p *itemset.Patterns, items ...int32) *itemset.Node {
	n, err := p.Node(itemset.New(items...))
	t.Nil(err)
	return n
}

func TestMakeLatticeOrder(x *testing.T) {
	t := assert.New(x)
	p := itemset.NewPatterns(4)
	t.Nil(p.Add(itemset.New(1), 3))
	t.Nil(p.Add(itemset.New(2), 3))
	t.Nil(p.Add(itemset.New(3), 4))
	t.Nil(p.Add(itemset.New(1, 2), 2))
	lat, err := lattice.MakeLattice(node(t, p, 1, 2))
	t.Nil(err)
	t.Equal(3, len(lat.V))
	t.Equal(2, len(lat.E))
	top := lat.V[len(lat.V)-1]
	t.Equal(2, top.Pattern().Level())
	for _, e := range lat.E {
		t.True(lat.V[e.Src].Pattern().Level() < lat.V[e.Targ].Pattern().Level())
		t.Equal(len(lat.V)-1, e.Targ)
	}

	single, err := lattice.MakeLattice(node(t, p, 3))
	t.Nil(err)
	t.Equal(1, len(single.V))
	t.Equal(0, len(single.E))
}

func TestDownwardClosedDetectsBrokenCounts(x *testing.T) {
	t := assert.New(x)
	p := itemset.NewPatterns(4)
	t.Nil(p.Add(itemset.New(1), 1))
	t.Nil(p.Add(itemset.New(2), 2))
	t.Nil(p.Add(itemset.New(1, 2), 2))
	t.NotNil(lattice.DownwardClosed(node(t, p, 1, 2)))
}

func TestDownwardClosedDetectsMissingParents(x *testing.T) {
	t := assert.New(x)
	p := itemset.NewPatterns(4)
	t.Nil(p.Add(itemset.New(1), 2))
	t.Nil(p.Add(itemset.New(1, 2), 2))
	t.NotNil(lattice.DownwardClosed(node(t, p, 1, 2)))
	t.Nil(lattice.DownwardClosed(node(t, p, 1)))
}

func TestNoLattice(x *testing.T) {
	t := assert.New(x)
	p := itemset.NewPatterns(1)
	t.Nil(p.Add(itemset.New(1), 1))
	_, err := node(t, p, 1).Lattice()
	_, ok := err.(*lattice.NoLattice)
	t.True(ok)
}
