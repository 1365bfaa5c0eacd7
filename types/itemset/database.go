package itemset

import (
	"slices"
)

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/timtadh/data-structures/errors"
)

// Database is the horizontal transaction store. Transaction ids are the
// positions of the transactions. Nothing in a Database changes after
// NewDatabase returns.
type Database struct {
	txs   [][]int32
	items int
}

// NewDatabase takes ownership of txs. Every transaction must be ascending,
// duplicate free and only hold ids in [0, items).
func NewDatabase(txs [][]int32, items int) (*Database, error) {
	for tid, tx := range txs {
		for i, item := range tx {
			if item < 0 || int(item) >= items {
				return nil, errors.Errorf("transaction %d has item %d outside [0, %d)", tid, item, items)
			}
			if i > 0 && tx[i-1] >= item {
				return nil, errors.Errorf("transaction %d is not a sorted set %v", tid, tx)
			}
		}
	}
	return &Database{txs: txs, items: items}, nil
}

// N is the number of transactions, the denominator of every support.
func (db *Database) N() int {
	return len(db.txs)
}

// Items is the size of the item alphabet.
func (db *Database) Items() int {
	return db.items
}

// Transaction returns the sorted items of transaction tid. The slice is
// shared and must not be modified.
func (db *Database) Transaction(tid int) []int32 {
	return db.txs[tid]
}

// Transactions returns every transaction. The slices are shared and must
// not be modified.
func (db *Database) Transactions() [][]int32 {
	return db.txs
}

func (db *Database) Contains(tid int, s Itemset) bool {
	tx := db.txs[tid]
	if len(s.items) > len(tx) {
		return false
	}
	for _, item := range s.items {
		if _, has := slices.BinarySearch(tx, item); !has {
			return false
		}
	}
	return true
}

// Vertical builds the item -> TID-list index in one pass.
func (db *Database) Vertical() *Vertical {
	tids := make([]*roaring.Bitmap, db.items)
	for tid, tx := range db.txs {
		for _, item := range tx {
			if tids[item] == nil {
				tids[item] = roaring.New()
			}
			tids[item].Add(uint32(tid))
		}
	}
	return &Vertical{tids: tids, n: len(db.txs)}
}

// Vertical is the read only TID-list view of a Database.
type Vertical struct {
	tids []*roaring.Bitmap
	n    int
}

func (v *Vertical) N() int {
	return v.n
}

func (v *Vertical) Items() int {
	return len(v.tids)
}

// TIDs is the TID-list of item, nil if the item never occurs. The bitmap is
// shared and must not be modified.
func (v *Vertical) TIDs(item int32) *roaring.Bitmap {
	if item < 0 || int(item) >= len(v.tids) {
		return nil
	}
	return v.tids[item]
}

func (v *Vertical) Count(item int32) int {
	tids := v.TIDs(item)
	if tids == nil {
		return 0
	}
	return int(tids.GetCardinality())
}

// Intersect returns a fresh bitmap of the transactions holding every item of
// s. The empty itemset is held by every transaction.
func (v *Vertical) Intersect(s Itemset) *roaring.Bitmap {
	if s.Empty() {
		all := roaring.New()
		all.AddRange(0, uint64(v.n))
		return all
	}
	bitmaps := make([]*roaring.Bitmap, 0, s.Level())
	for _, item := range s.items {
		tids := v.TIDs(item)
		if tids == nil {
			return roaring.New()
		}
		bitmaps = append(bitmaps, tids)
	}
	if len(bitmaps) == 1 {
		return bitmaps[0].Clone()
	}
	return roaring.FastAnd(bitmaps...)
}
