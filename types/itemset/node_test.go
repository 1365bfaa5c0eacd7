package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
)

import (
	"github.com/timtadh/fim/lattice"
)

// marketPatterns holds {bread milk diaper} and everything below it at the
// counts the market basket gives them, plus {milk coke}.
func marketPatterns(t *assert.Assertions) (*Patterns, *Index[string]) {
	_, idx, err := Encode(market)
	t.Nil(err)
	p := NewPatterns(5)
	add := func(count int, items ...string) {
		s, err := idx.Itemset(items...)
		t.Nil(err)
		t.Nil(p.Add(s, count))
	}
	add(4, "bread")
	add(4, "milk")
	add(4, "diaper")
	add(2, "coke")
	add(3, "bread", "milk")
	add(3, "bread", "diaper")
	add(3, "milk", "diaper")
	add(2, "milk", "coke")
	add(2, "bread", "milk", "diaper")
	return p, idx
}

func TestNodeParents(x *testing.T) {
	t := assert.New(x)
	p, idx := marketPatterns(t)
	s, _ := idx.Itemset("bread", "milk", "diaper")
	n, err := p.Node(s)
	t.Nil(err)
	t.Equal(2, n.Count())
	t.Equal(.4, n.Support().Float())
	parents, err := n.Parents()
	t.Nil(err)
	t.Equal(3, len(parents))
	for _, parent := range parents {
		t.True(s.Contains(parent.Pattern().(Itemset)))
		t.Equal(2, parent.Pattern().Level())
	}
	count, err := n.ParentCount()
	t.Nil(err)
	t.Equal(3, count)

	single, _ := idx.Itemset("coke")
	c, err := p.Node(single)
	t.Nil(err)
	parents, err = c.Parents()
	t.Nil(err)
	t.Equal(0, len(parents))
}

func TestNodeMissingParent(x *testing.T) {
	t := assert.New(x)
	p := NewPatterns(3)
	t.Nil(p.Add(New(1, 2), 1))
	t.Nil(p.Add(New(1), 2))
	n, err := p.Node(New(1, 2))
	t.Nil(err)
	_, err = n.Parents()
	t.NotNil(err)
	_, err = p.Node(New(3))
	t.NotNil(err)
}

func TestNodeChildrenMaximalClosed(x *testing.T) {
	t := assert.New(x)
	p, idx := marketPatterns(t)
	node := func(items ...string) *Node {
		s, err := idx.Itemset(items...)
		t.Nil(err)
		n, err := p.Node(s)
		t.Nil(err)
		return n
	}
	kids, err := node("milk").Children()
	t.Nil(err)
	t.Equal(3, len(kids))

	max, err := node("bread", "milk", "diaper").Maximal()
	t.Nil(err)
	t.True(max)
	max, err = node("milk", "coke").Maximal()
	t.Nil(err)
	t.True(max)
	max, err = node("bread", "milk").Maximal()
	t.Nil(err)
	t.False(max)

	closed, err := node("coke").Closed()
	t.Nil(err)
	t.False(closed, "{milk coke} has the same count as {coke}")
	closed, err = node("milk").Closed()
	t.Nil(err)
	t.True(closed)
	closed, err = node("bread", "milk").Closed()
	t.Nil(err)
	t.True(closed)
}

func TestNodeChildrenAreSupersetsOnNextLevel(x *testing.T) {
	t := assert.New(x)
	p, _ := marketPatterns(t)
	for _, s := range p.Itemsets() {
		n, err := p.Node(s)
		t.Nil(err)
		kids, err := n.Children()
		t.Nil(err)
		expected := make([]Itemset, 0)
		for _, o := range p.Level(s.Level() + 1) {
			if o.Contains(s) {
				expected = append(expected, o)
			}
		}
		got := make([]Itemset, 0, len(kids))
		for _, kid := range kids {
			got = append(got, kid.(*Node).Itemset())
			c, _ := p.Count(kid.(*Node).Itemset())
			t.Equal(c, kid.Count())
		}
		t.Equal(expected, got, "%v", s)
	}
}

func TestNodeLattice(x *testing.T) {
	t := assert.New(x)
	p, idx := marketPatterns(t)
	s, _ := idx.Itemset("bread", "milk", "diaper")
	n, err := p.Node(s)
	t.Nil(err)
	lat, err := lattice.MakeLattice(n)
	t.Nil(err)
	t.Equal(7, len(lat.V))
	t.Equal(9, len(lat.E))
	t.Equal(3, lat.V[len(lat.V)-1].Pattern().Level())
	t.Nil(lattice.DownwardClosed(n))
}

func TestNodes(x *testing.T) {
	t := assert.New(x)
	p, _ := marketPatterns(t)
	nodes, err := p.Nodes()
	t.Nil(err)
	t.Equal(p.Size(), len(nodes))
	for i := 1; i < len(nodes); i++ {
		t.True(nodes[i-1].Pattern().Level() <= nodes[i].Pattern().Level())
	}
}

func TestFormatter(x *testing.T) {
	t := assert.New(x)
	p, idx := marketPatterns(t)
	s, _ := idx.Itemset("milk", "bread")
	n, err := p.Node(s)
	t.Nil(err)
	f := &Formatter[string]{Index: idx}
	t.Equal(".items", f.FileExt())
	t.Equal("{bread milk}", f.PatternName(n))
	var buf bytes.Buffer
	t.Nil(f.FormatPattern(&buf, n))
	t.Equal("3 0.6 bread milk\n", buf.String())
}
