package candidates

import (
	"slices"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/fim/types/itemset"
)

// Generate joins every two frequent (k-1)-itemsets of F that agree on all
// but their last item. The result holds every k-itemset whose (k-1)-subsets
// are all in F, each exactly once and in canonical order. Every member of F
// must be a (k-1)-itemset.
func Generate(F []itemset.Itemset, k int) itemset.Iterator {
	if k < 2 {
		return itemset.FromSlice(nil)
	}
	sorted := make([]itemset.Itemset, len(F))
	copy(sorted, F)
	itemset.Sort(sorted)
	sorted = slices.CompactFunc(sorted, func(a, b itemset.Itemset) bool {
		return a.Equals(b)
	})
	for _, s := range sorted {
		if s.Level() != k-1 {
			return errorIterator(errors.Errorf("generating %d-candidates from a %d-itemset %v", k, s.Level(), s))
		}
	}
	// members sharing a prefix are contiguous once sorted
	i, j := 0, 1
	var next itemset.Iterator
	next = func() (itemset.Itemset, error, itemset.Iterator) {
		for i < len(sorted) {
			a := sorted[i]
			if j < len(sorted) && sorted[j].Prefix().Equals(a.Prefix()) {
				b := sorted[j]
				j++
				return a.Extend(b.Last()), nil, next
			}
			i++
			j = i + 1
		}
		return itemset.Itemset{}, nil, nil
	}
	return next
}

func errorIterator(err error) itemset.Iterator {
	return func() (itemset.Itemset, error, itemset.Iterator) {
		return itemset.Itemset{}, err, nil
	}
}

// Prune drops every candidate with a (k-1)-subset outside F. For k <= 2
// every candidate passes since its subsets are single frequent items. F must
// only hold (k-1)-itemsets and candidates must be k-itemsets, anything else
// is an error.
func Prune(F []itemset.Itemset, candidates itemset.Iterator, k int) (itemset.Iterator, error) {
	frequent := set.NewSortedSet(len(F))
	for _, s := range F {
		if s.Level() != k-1 {
			return nil, errors.Errorf("pruning %d-candidates with a %d-itemset %v", k, s.Level(), s)
		}
		err := frequent.Add(s)
		if err != nil {
			return nil, err
		}
	}
	var next itemset.Iterator
	next = func() (itemset.Itemset, error, itemset.Iterator) {
		var c itemset.Itemset
		var err error
		for c, err, candidates = candidates(); candidates != nil; c, err, candidates = candidates() {
			if c.Level() != k {
				return itemset.Itemset{}, errors.Errorf("candidate %v is not a %d-itemset", c, k), nil
			}
			if k <= 2 || closed(frequent, c) {
				return c, nil, next
			}
		}
		return itemset.Itemset{}, err, nil
	}
	return next, nil
}

func closed(frequent *set.SortedSet, c itemset.Itemset) bool {
	for _, sub := range c.Subsets() {
		if !frequent.Has(sub) {
			return false
		}
	}
	return true
}
