package pattern

import (
	"slices"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/miners"
	"github.com/timtadh/fim/types/itemset"
)

// Miner grows patterns depth first over projected databases. Transactions
// are sorted, so projecting on an item keeps only what follows it and every
// pattern is reached exactly once, in canonical order.
type Miner struct {
	miners.Outcome
	db *itemset.Database
}

func NewMiner(db *itemset.Database) *Miner {
	return &Miner{
		Outcome: miners.Outcome{Name: "pattern-growth"},
		db:      db,
	}
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
	errors.Logf("INFO", "%v: %d transactions (min count %d)", m.Name, m.db.N(), minCount)
	err := m.grow(m.db.Transactions(), itemset.New(), minCount, patterns)
	if err != nil {
		return nil, err
	}
	m.Set(patterns)
	return patterns, nil
}

func (m *Miner) grow(db [][]int32, prefix itemset.Itemset, minCount int, patterns *itemset.Patterns) error {
	counts := make(map[int32]int)
	for _, tx := range db {
		for _, item := range tx {
			counts[item]++
		}
	}
	items := make([]int32, 0, len(counts))
	for item, count := range counts {
		if count >= minCount {
			items = append(items, item)
		}
	}
	slices.Sort(items)
	for _, item := range items {
		found := prefix.Extend(item)
		err := patterns.Add(found, counts[item])
		if err != nil {
			return err
		}
		proj := project(db, item)
		if len(proj) == 0 {
			continue
		}
		err = m.grow(proj, found, minCount, patterns)
		if err != nil {
			return err
		}
	}
	return nil
}

// project keeps the part after item of every transaction holding it. The
// suffixes share memory with db.
func project(db [][]int32, item int32) [][]int32 {
	proj := make([][]int32, 0, len(db))
	for _, tx := range db {
		i, has := slices.BinarySearch(tx, item)
		if has && i+1 < len(tx) {
			proj = append(proj, tx[i+1:])
		}
	}
	return proj
}
