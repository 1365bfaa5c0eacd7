package apriori

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/candidates"
	"github.com/timtadh/fim/miners"
	"github.com/timtadh/fim/support"
	"github.com/timtadh/fim/types/itemset"
)

// Miner is the level-wise miner. Both variants share the loop:
// generate -> prune -> count -> filter, one itemset size per round. They
// differ in how the counts are obtained.
type Miner struct {
	miners.Outcome
	db     *itemset.Database
	oracle support.Oracle
	first  func() []int
}

// NewScan counts the 1-itemsets in a single pass over the transactions and
// every larger candidate by scanning the database.
func NewScan(db *itemset.Database) *Miner {
	m := &Miner{
		Outcome: miners.Outcome{Name: "apriori"},
		db:      db,
		oracle:  support.NewScan(db),
	}
	m.first = m.scanItems
	return m
}

// NewVertical reads the 1-itemset counts off the TID-lists and counts larger
// candidates by intersecting them.
func NewVertical(db *itemset.Database) *Miner {
	v := db.Vertical()
	m := &Miner{
		Outcome: miners.Outcome{Name: "apriori-tid"},
		db:      db,
		oracle:  support.NewVertical(v),
	}
	m.first = func() []int {
		counts := make([]int, v.Items())
		for item := range counts {
			counts[item] = v.Count(int32(item))
		}
		return counts
	}
	return m
}

func (m *Miner) scanItems() []int {
	counts := make([]int, m.db.Items())
	for _, tx := range m.db.Transactions() {
		for _, item := range tx {
			counts[item]++
		}
	}
	return counts
}

func (m *Miner) Run(minSupport float64) (*itemset.Patterns, error) {
	if err := miners.CheckThreshold(minSupport); err != nil {
		return nil, err
	}
	patterns := itemset.NewPatterns(m.db.N())
	if m.db.N() == 0 {
		m.Set(patterns)
		return patterns, nil
	}
	minCount := itemset.MinCount(minSupport, m.db.N())
	level := make([]itemset.Itemset, 0, m.db.Items())
	for item, count := range m.first() {
		if count >= minCount {
			s := itemset.New(int32(item))
			if err := patterns.Add(s, count); err != nil {
				return nil, err
			}
			level = append(level, s)
		}
	}
	errors.Logf("INFO", "%v level 1: %d frequent items (min count %d)", m.Name, len(level), minCount)
	for k := 2; len(level) > 0; k++ {
		cands, err := candidates.Prune(level, candidates.Generate(level, k), k)
		if err != nil {
			return nil, err
		}
		next := make([]itemset.Itemset, 0, len(level))
		tried := 0
		err = itemset.Do(cands, func(c itemset.Itemset) error {
			tried++
			count := m.oracle.Count(c)
			if count < minCount {
				return nil
			}
			next = append(next, c)
			return patterns.Add(c, count)
		})
		if err != nil {
			return nil, err
		}
		errors.Logf("INFO", "%v level %d: %d of %d candidates frequent", m.Name, k, len(next), tried)
		level = next
	}
	m.Set(patterns)
	return patterns, nil
}
