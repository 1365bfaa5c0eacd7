package lattice

import (
	"github.com/timtadh/data-structures/errors"
)

func MakeLattice(n Node) (*Lattice, error) {
	lat, err := n.Lattice()
	if err != nil {
		_, ok := err.(*NoLattice)
		if !ok {
			return nil, err
		}
	} else {
		return lat, nil
	}
	return lattice(n)
}

// lattice walks the parents of node breadth first and returns the sub-lattice
// below it ordered from the smallest patterns up to node.
func lattice(node Node) (*Lattice, error) {
	pop := func(queue []Node) (Node, []Node) {
		n := queue[0]
		copy(queue[0:len(queue)-1], queue[1:len(queue)])
		queue = queue[0 : len(queue)-1]
		return n, queue
	}
	queue := make([]Node, 0, 10)
	queue = append(queue, node)
	queued := make(map[string]bool)
	queued[string(node.Pattern().Label())] = true
	rlattice := make([]Node, 0, 10)
	for len(queue) > 0 {
		var n Node
		n, queue = pop(queue)
		rlattice = append(rlattice, n)
		parents, err := n.Parents()
		if err != nil {
			return nil, err
		}
		for _, p := range parents {
			l := string(p.Pattern().Label())
			if _, has := queued[l]; !has {
				queue = append(queue, p)
				queued[l] = true
			}
		}
	}
	lattice := make([]Node, 0, len(rlattice))
	labels := make(map[string]int, len(rlattice))
	for i := len(rlattice) - 1; i >= 0; i-- {
		lattice = append(lattice, rlattice[i])
		labels[string(lattice[len(lattice)-1].Pattern().Label())] = len(lattice) - 1
	}
	edges := make([]Edge, 0, len(lattice)*2)
	for i, n := range lattice {
		kids, err := n.Children()
		if err != nil {
			return nil, err
		}
		for _, kid := range kids {
			j, has := labels[string(kid.Pattern().Label())]
			if has {
				edges = append(edges, Edge{Src: i, Targ: j})
			}
		}
	}
	return &Lattice{lattice, edges}, nil
}

// DownwardClosed checks that every node in the lattice below n has all of its
// immediate subsets present (one parent per item) and that no parent has a
// smaller count than its child.
func DownwardClosed(n Node) error {
	lat, err := MakeLattice(n)
	if err != nil {
		return err
	}
	for _, v := range lat.V {
		level := v.Pattern().Level()
		if level <= 1 {
			continue
		}
		parents, err := v.Parents()
		if err != nil {
			return err
		}
		if len(parents) != level {
			return errors.Errorf("%v has %d frequent parents expected %d", v, len(parents), level)
		}
		for _, p := range parents {
			if p.Count() < v.Count() {
				return errors.Errorf("parent %v of %v has a smaller count", p, v)
			}
		}
	}
	return nil
}
