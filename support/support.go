package support

import (
	"github.com/timtadh/fim/types/itemset"
)

// Oracle counts the transactions containing an itemset.
type Oracle interface {
	Count(s itemset.Itemset) int
}

// Scan counts by checking every transaction of the database.
type Scan struct {
	db *itemset.Database
}

func NewScan(db *itemset.Database) *Scan {
	return &Scan{db: db}
}

func (o *Scan) Count(s itemset.Itemset) int {
	count := 0
	for tid := 0; tid < o.db.N(); tid++ {
		if o.db.Contains(tid, s) {
			count++
		}
	}
	return count
}

// Vertical counts by intersecting TID-lists.
type Vertical struct {
	v *itemset.Vertical
}

func NewVertical(v *itemset.Vertical) *Vertical {
	return &Vertical{v: v}
}

func (o *Vertical) Count(s itemset.Itemset) int {
	switch s.Level() {
	case 0:
		return o.v.N()
	case 1:
		return o.v.Count(s.At(0))
	}
	for i := 0; i < s.Level(); i++ {
		if o.v.TIDs(s.At(i)) == nil {
			return 0
		}
	}
	return int(o.v.Intersect(s).GetCardinality())
}

func Support(o Oracle, s itemset.Itemset, n int) itemset.Support {
	return itemset.Support{Count: o.Count(s), N: n}
}
