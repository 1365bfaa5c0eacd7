package miners

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/types/itemset"
)

// Outcome holds the outcome of the last run of a miner. Miners embed it.
type Outcome struct {
	Name     string
	patterns *itemset.Patterns
}

func (r *Outcome) Set(patterns *itemset.Patterns) {
	r.patterns = patterns
}

func (r *Outcome) Results() (*itemset.Patterns, error) {
	if r.patterns == nil {
		return nil, &NotRunError{Miner: r.Name}
	}
	return r.patterns, nil
}

// Report hands every pattern to rptr, smallest first. It does not close rptr.
func Report(patterns *itemset.Patterns, rptr Reporter) error {
	nodes, err := patterns.Nodes()
	if err != nil {
		return err
	}
	for _, n := range nodes {
		err := rptr.Report(n)
		if err != nil {
			return err
		}
	}
	errors.Logf("DEBUG", "reported %d patterns", len(nodes))
	return nil
}
