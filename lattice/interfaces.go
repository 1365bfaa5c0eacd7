package lattice

import (
	"io"
)

import (
	"github.com/timtadh/data-structures/types"
)

type Lattice struct {
	V []Node
	E []Edge
}

// Node is a frequent pattern positioned in the lattice of a mined pattern
// set. Parents are the frequent patterns one item smaller, children the
// frequent patterns one item larger.
type Node interface {
	Pattern() Pattern
	Count() int
	Parents() ([]Node, error)
	ParentCount() (int, error)
	Children() ([]Node, error)
	ChildCount() (int, error)
	Maximal() (bool, error)
	Closed() (bool, error)
	Lattice() (*Lattice, error)
}

type Pattern interface {
	types.Hashable
	Label() []byte
	Level() int
}

type Formatter interface {
	FileExt() string
	PatternName(Node) string
	FormatPattern(io.Writer, Node) error
}

type NoLattice struct{}

func (n *NoLattice) Error() string {
	return "No Lattice Function Implemented"
}

type Edge struct {
	Src, Targ int
}
