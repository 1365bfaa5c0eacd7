package miners

import ()

import (
	"github.com/timtadh/fim/lattice"
	"github.com/timtadh/fim/types/itemset"
)

// Miner finds every itemset of a database with support >= minSupport. Run
// always recomputes from scratch; Results returns what the last successful
// Run found.
type Miner interface {
	Run(minSupport float64) (*itemset.Patterns, error)
	Results() (*itemset.Patterns, error)
}

type Reporter interface {
	Report(lattice.Node) error
	Close() error
}
