package itemset

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Index maps raw items to dense ids. Ids follow the natural order of the raw
// items so the encoding only depends on the set of distinct items.
type Index[T cmp.Ordered] struct {
	items []T
	ids   map[T]int32
}

func NewIndex[T cmp.Ordered](raw [][]T) (*Index[T], error) {
	seen := make(map[T]bool)
	items := make([]T, 0, 10)
	for tx, row := range raw {
		for _, item := range row {
			if item != item { // NaN
				return nil, &InvalidInputError{
					Line:   tx + 1,
					Token:  fmt.Sprint(item),
					Reason: "item is not equal to itself",
				}
			}
			if !seen[item] {
				seen[item] = true
				items = append(items, item)
			}
		}
	}
	if len(items) > math.MaxInt32 {
		return nil, errors.Errorf("too many distinct items %d", len(items))
	}
	slices.Sort(items)
	ids := make(map[T]int32, len(items))
	for id, item := range items {
		ids[item] = int32(id)
	}
	return &Index[T]{items: items, ids: ids}, nil
}

// Encode builds the item index for raw and the database of encoded
// transactions. Duplicate items inside a transaction collapse, empty
// transactions are kept.
func Encode[T cmp.Ordered](raw [][]T) (*Database, *Index[T], error) {
	idx, err := NewIndex(raw)
	if err != nil {
		return nil, nil, err
	}
	txs := make([][]int32, 0, len(raw))
	for _, row := range raw {
		tx := make([]int32, 0, len(row))
		for _, item := range row {
			tx = append(tx, idx.ids[item])
		}
		slices.Sort(tx)
		txs = append(txs, slices.Compact(tx))
	}
	db, err := NewDatabase(txs, len(idx.items))
	if err != nil {
		return nil, nil, err
	}
	return db, idx, nil
}

func (x *Index[T]) Size() int {
	return len(x.items)
}

func (x *Index[T]) Item(id int32) T {
	return x.items[id]
}

func (x *Index[T]) Id(item T) (int32, bool) {
	id, has := x.ids[item]
	return id, has
}

func (x *Index[T]) Decode(s Itemset) []T {
	items := make([]T, 0, s.Level())
	for _, id := range s.items {
		items = append(items, x.items[id])
	}
	return items
}

// Itemset encodes raw items. It fails if an item was never seen while
// building the index.
func (x *Index[T]) Itemset(items ...T) (Itemset, error) {
	ids := make([]int32, 0, len(items))
	for _, item := range items {
		id, has := x.ids[item]
		if !has {
			return Itemset{}, errors.Errorf("item %v is not in the index", item)
		}
		ids = append(ids, id)
	}
	return New(ids...), nil
}
