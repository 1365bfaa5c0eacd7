package itemset

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/lattice"
)

// Node places a frequent itemset in the lattice of the pattern set it was
// mined into.
type Node struct {
	items    Itemset
	count    int
	patterns *Patterns
}

func (p *Patterns) Node(s Itemset) (*Node, error) {
	n, has := p.lookup(s)
	if !has {
		return nil, errors.Errorf("%v is not a frequent pattern", s)
	}
	return n, nil
}

// Nodes returns a node for every pattern in the order of Itemsets.
func (p *Patterns) Nodes() ([]lattice.Node, error) {
	nodes := make([]lattice.Node, 0, p.Size())
	for _, s := range p.Itemsets() {
		n, err := p.Node(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node %v %v>", n.items, n.count)
}

func (n *Node) Itemset() Itemset {
	return n.items
}

func (n *Node) Pattern() lattice.Pattern {
	return n.items
}

func (n *Node) Count() int {
	return n.count
}

func (n *Node) Support() Support {
	return Support{Count: n.count, N: n.patterns.N()}
}

// Parents are the immediate subsets. A frequent itemset whose subset is
// missing from the pattern set means the miner broke downward closure, which
// is reported as an error rather than skipped.
func (n *Node) Parents() ([]lattice.Node, error) {
	if n.items.Level() <= 1 {
		return []lattice.Node{}, nil
	}
	nodes := make([]lattice.Node, 0, n.items.Level())
	for _, sub := range n.items.Subsets() {
		p, err := n.patterns.Node(sub)
		if err != nil {
			return nil, errors.Errorf("parent of frequent pattern %v: %v", n.items, err)
		}
		nodes = append(nodes, p)
	}
	return nodes, nil
}

func (n *Node) ParentCount() (int, error) {
	if n.items.Level() <= 1 {
		return 0, nil
	}
	return n.items.Level(), nil
}

// Children are the frequent supersets with one more item. Each one extends
// the itemset by a frequent item, so they are found by lookup rather than by
// scanning the next level.
func (n *Node) Children() ([]lattice.Node, error) {
	nodes := make([]lattice.Node, 0, 10)
	if n.items.Level() >= n.patterns.MaxLevel() {
		return nodes, nil
	}
	for _, one := range n.patterns.Level(1) {
		item := one.At(0)
		if n.items.Has(item) {
			continue
		}
		kid, has := n.patterns.lookup(n.items.Extend(item))
		if has {
			nodes = append(nodes, kid)
		}
	}
	return nodes, nil
}

func (p *Patterns) lookup(s Itemset) (*Node, bool) {
	count, has := p.Count(s)
	if !has {
		return nil, false
	}
	return &Node{items: s, count: count, patterns: p}, true
}

func (n *Node) ChildCount() (int, error) {
	kids, err := n.Children()
	if err != nil {
		return 0, err
	}
	return len(kids), nil
}

// Maximal is true when no frequent superset exists.
func (n *Node) Maximal() (bool, error) {
	count, err := n.ChildCount()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Closed is true when every frequent superset occurs in fewer transactions.
func (n *Node) Closed() (bool, error) {
	kids, err := n.Children()
	if err != nil {
		return false, err
	}
	for _, kid := range kids {
		if kid.Count() == n.count {
			return false, nil
		}
	}
	return true, nil
}

func (n *Node) Lattice() (*lattice.Lattice, error) {
	return nil, &lattice.NoLattice{}
}
