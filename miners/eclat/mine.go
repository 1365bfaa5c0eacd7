package eclat

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/miners"
	"github.com/timtadh/fim/types/itemset"
)

// Miner is the depth first equivalence class miner. After the vertical
// index is built it never looks at the transactions again.
type Miner struct {
	miners.Outcome
	vertical *itemset.Vertical
}

type member struct {
	items itemset.Itemset
	tids  *roaring.Bitmap
}

// class is a set of frequent itemsets sharing all but their last item, in
// canonical order.
type class []member

func NewMiner(db *itemset.Database) *Miner {
	return &Miner{
		Outcome:  miners.Outcome{Name: "eclat"},
		vertical: db.Vertical(),
	}
}

func (m *Miner) Run(minSupport float64) (*itemset.Patterns, error) {
	if err := miners.CheckThreshold(minSupport); err != nil {
		return nil, err
	}
	n := m.vertical.N()
	patterns := itemset.NewPatterns(n)
	if n == 0 {
		m.Set(patterns)
		return patterns, nil
	}
	minCount := itemset.MinCount(minSupport, n)
	R := make(class, 0, m.vertical.Items())
	for item := 0; item < m.vertical.Items(); item++ {
		tids := m.vertical.TIDs(int32(item))
		if tids != nil && int(tids.GetCardinality()) >= minCount {
			R = append(R, member{items: itemset.New(int32(item)), tids: tids})
		}
	}
	errors.Logf("INFO", "%v: %d frequent items (min count %d)", m.Name, len(R), minCount)
	err := m.explore(R, minCount, patterns)
	if err != nil {
		return nil, err
	}
	m.Set(patterns)
	return patterns, nil
}

// explore emits each member of R then, before moving to the next member,
// mines the class of its extensions by the members after it.
func (m *Miner) explore(R class, minCount int, patterns *itemset.Patterns) error {
	for i, a := range R {
		err := patterns.Add(a.items, int(a.tids.GetCardinality()))
		if err != nil {
			return err
		}
		prefix := a.items.Prefix()
		E := make(class, 0, len(R)-i)
		for _, b := range R[i+1:] {
			if !b.items.Prefix().Equals(prefix) {
				return errors.Errorf("%v and %v are in one class but have different prefixes", a.items, b.items)
			}
			tids := roaring.And(a.tids, b.tids)
			if int(tids.GetCardinality()) >= minCount {
				E = append(E, member{items: a.items.Extend(b.items.Last()), tids: tids})
			}
		}
		if len(E) > 0 {
			errors.Logf("DEBUG", "%v: class %v has %d members", m.Name, a.items, len(E))
			err := m.explore(E, minCount, patterns)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
