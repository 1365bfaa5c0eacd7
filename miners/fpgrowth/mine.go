package fpgrowth

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/fptree"
	"github.com/timtadh/fim/miners"
	"github.com/timtadh/fim/types/itemset"
)

// Miner is the prefix tree miner. Thresholds are compared as counts.
type Miner struct {
	miners.Outcome
	db *itemset.Database
}

func NewMiner(db *itemset.Database) *Miner {
	return &Miner{
		Outcome: miners.Outcome{Name: "fp-growth"},
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
	tree := m.tree(minCount)
	if tree != nil {
		errors.Logf("INFO", "%v: %v (min count %d)", m.Name, tree, minCount)
		err := m.mine(tree, minCount, itemset.New(), patterns)
		if err != nil {
			return nil, err
		}
	}
	m.Set(patterns)
	return patterns, nil
}

// tree counts the items in one pass and inserts the transactions, reduced to
// their frequent items, in a second.
func (m *Miner) tree(minCount int) *fptree.Tree {
	counts := make(map[int32]int)
	for _, tx := range m.db.Transactions() {
		for _, item := range tx {
			counts[item]++
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
	tree := fptree.New()
	for _, tx := range m.db.Transactions() {
		items := fptree.Order(counts, minCount, tx)
		if len(items) > 0 {
			tree.Insert(items, 1)
		}
	}
	return tree
}

func (m *Miner) mine(tree *fptree.Tree, minCount int, prefix itemset.Itemset, patterns *itemset.Patterns) error {
	for _, item := range tree.Items() {
		count := tree.Support(item)
		if count < minCount {
			continue
		}
		found := prefix.Extend(item)
		err := patterns.Add(found, count)
		if err != nil {
			return err
		}
		cond := fptree.Build(tree.ConditionalBase(item), minCount)
		if cond == nil {
			continue
		}
		err = m.mine(cond, minCount, found, patterns)
		if err != nil {
			return err
		}
	}
	return nil
}
