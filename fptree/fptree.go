package fptree

import (
	"fmt"
	"slices"
)

import (
	"github.com/timtadh/data-structures/errors"
)

const root = 0

// Tree is a prefix tree of transactions. Nodes live in an arena owned by the
// tree and refer to each other by index, so a conditional tree never shares
// anything with the tree it was projected from.
type Tree struct {
	nodes  []node
	header map[int32][]int32
}

type node struct {
	item     int32
	count    int
	parent   int32
	children map[int32]int32
}

// Path is one entry of a conditional pattern base: the items from the root
// down to (not including) a node, together with that node's count.
type Path struct {
	Items []int32
	Count int
}

func New() *Tree {
	t := &Tree{
		nodes:  make([]node, 1, 64),
		header: make(map[int32][]int32),
	}
	t.nodes[root] = node{item: -1, parent: -1, children: make(map[int32]int32)}
	return t
}

// Build counts the items of paths, drops the ones below minCount, and
// inserts every path with its remaining items ordered by descending count
// (ties by ascending item). It returns nil when no item is frequent.
func Build(paths []Path, minCount int) *Tree {
	counts := make(map[int32]int)
	for _, p := range paths {
		for _, item := range p.Items {
			counts[item] += p.Count
		}
	}
	frequent := 0
	for _, c := range counts {
		if c >= minCount {
			frequent++
		}
	}
	if frequent == 0 {
		return nil
	}
	t := New()
	for _, p := range paths {
		items := Order(counts, minCount, p.Items)
		if len(items) > 0 {
			t.Insert(items, p.Count)
		}
	}
	errors.Logf("DEBUG", "built %v from %d paths", t, len(paths))
	return t
}

// Order filters items down to the ones with counts[item] >= minCount and
// sorts them by descending count, ties by ascending item.
func Order(counts map[int32]int, minCount int, items []int32) []int32 {
	ordered := make([]int32, 0, len(items))
	for _, item := range items {
		if counts[item] >= minCount {
			ordered = append(ordered, item)
		}
	}
	slices.SortFunc(ordered, func(a, b int32) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return int(a - b)
	})
	return ordered
}

// Insert adds items as a path below the root, sharing the longest existing
// prefix and adding count to every node along the way.
func (t *Tree) Insert(items []int32, count int) {
	cur := int32(root)
	for _, item := range items {
		kid, has := t.nodes[cur].children[item]
		if !has {
			kid = int32(len(t.nodes))
			t.nodes = append(t.nodes, node{
				item:     item,
				parent:   cur,
				children: make(map[int32]int32),
			})
			t.nodes[cur].children[item] = kid
			t.header[item] = append(t.header[item], kid)
		}
		t.nodes[kid].count += count
		cur = kid
	}
}

// Items lists the items of the header table by descending node list length,
// ties by ascending item.
func (t *Tree) Items() []int32 {
	items := make([]int32, 0, len(t.header))
	for item := range t.header {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b int32) int {
		la, lb := len(t.header[a]), len(t.header[b])
		if la != lb {
			return lb - la
		}
		return int(a - b)
	})
	return items
}

// Support sums the counts of every node holding item.
func (t *Tree) Support(item int32) int {
	sum := 0
	for _, n := range t.header[item] {
		sum += t.nodes[n].count
	}
	return sum
}

// ConditionalBase collects, for every node holding item, the path from the
// root to the node's parent with the node's count.
func (t *Tree) ConditionalBase(item int32) []Path {
	paths := make([]Path, 0, len(t.header[item]))
	for _, n := range t.header[item] {
		rpath := make([]int32, 0, 10)
		for p := t.nodes[n].parent; p != root; p = t.nodes[p].parent {
			rpath = append(rpath, t.nodes[p].item)
		}
		if len(rpath) == 0 {
			continue
		}
		slices.Reverse(rpath)
		paths = append(paths, Path{Items: rpath, Count: t.nodes[n].count})
	}
	return paths
}

// Size is the number of nodes not counting the root.
func (t *Tree) Size() int {
	return len(t.nodes) - 1
}

// Paths walks every root to leaf path, handing the items and the count of the
// leaf to do.
func (t *Tree) Paths(do func(items []int32, count int) error) error {
	var walk func(n int32, path []int32) error
	walk = func(n int32, path []int32) error {
		if n != root {
			path = append(path, t.nodes[n].item)
		}
		if len(t.nodes[n].children) == 0 {
			if n == root {
				return nil
			}
			return do(slices.Clone(path), t.nodes[n].count)
		}
		kids := make([]int32, 0, len(t.nodes[n].children))
		for item := range t.nodes[n].children {
			kids = append(kids, item)
		}
		slices.Sort(kids)
		for _, item := range kids {
			err := walk(t.nodes[n].children[item], path)
			if err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, make([]int32, 0, 10))
}

func (t *Tree) String() string {
	return fmt.Sprintf("<Tree nodes=%d items=%d>", t.Size(), len(t.header))
}
