package itemset

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

import (
	"github.com/timtadh/data-structures/types"
)

// Itemset is an immutable set of encoded items kept in ascending order. Two
// itemsets are the same pattern iff they hold the same items, which is what
// Equals, Less and Hash compare, so an Itemset can key the data-structures
// hash tables and sorted sets directly.
type Itemset struct {
	items []int32
}

// Iterator yields itemsets one at a time. When it is exhausted it returns a
// nil next iterator and the error (if any) that stopped it.
type Iterator func() (Itemset, error, Iterator)

func New(items ...int32) Itemset {
	s := make([]int32, len(items))
	copy(s, items)
	slices.Sort(s)
	return Itemset{slices.Compact(s)}
}

// sorted wraps an already ascending, duplicate free slice without copying.
func sorted(items []int32) Itemset {
	return Itemset{items}
}

func (s Itemset) Items() []int32 {
	return slices.Clone(s.items)
}

func (s Itemset) Level() int {
	return len(s.items)
}

func (s Itemset) Empty() bool {
	return len(s.items) == 0
}

func (s Itemset) At(i int) int32 {
	return s.items[i]
}

func (s Itemset) Last() int32 {
	return s.items[len(s.items)-1]
}

func (s Itemset) Has(item int32) bool {
	_, has := slices.BinarySearch(s.items, item)
	return has
}

// Contains is true when every item of o is in s.
func (s Itemset) Contains(o Itemset) bool {
	i := 0
	for _, item := range o.items {
		for i < len(s.items) && s.items[i] < item {
			i++
		}
		if i >= len(s.items) || s.items[i] != item {
			return false
		}
		i++
	}
	return true
}

// Prefix drops the last item.
func (s Itemset) Prefix() Itemset {
	if len(s.items) == 0 {
		return s
	}
	return sorted(s.items[:len(s.items)-1])
}

// Extend returns s with item added. s is not modified.
func (s Itemset) Extend(item int32) Itemset {
	i, has := slices.BinarySearch(s.items, item)
	if has {
		return s
	}
	items := make([]int32, 0, len(s.items)+1)
	items = append(items, s.items[:i]...)
	items = append(items, item)
	items = append(items, s.items[i:]...)
	return sorted(items)
}

// Subsets returns the Level()-1 sized subsets, each one missing a single item,
// in canonical order.
func (s Itemset) Subsets() []Itemset {
	subsets := make([]Itemset, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		items := make([]int32, 0, len(s.items)-1)
		items = append(items, s.items[:i]...)
		items = append(items, s.items[i+1:]...)
		subsets = append(subsets, sorted(items))
	}
	return subsets
}

func (s Itemset) Compare(o Itemset) int {
	return slices.Compare(s.items, o.items)
}

func (s Itemset) Equals(o types.Equatable) bool {
	switch b := o.(type) {
	case Itemset:
		return slices.Equal(s.items, b.items)
	default:
		return false
	}
}

func (s Itemset) Less(o types.Sortable) bool {
	switch b := o.(type) {
	case Itemset:
		return s.Compare(b) < 0
	default:
		return false
	}
}

func (s Itemset) Hash() int {
	return types.ByteSlice(s.Label()).Hash()
}

func (s Itemset) Label() []byte {
	size := uint32(len(s.items))
	bytes := make([]byte, 4*(size+1))
	binary.BigEndian.PutUint32(bytes[0:4], size)
	st := 4
	e := st + 4
	for _, item := range s.items {
		binary.BigEndian.PutUint32(bytes[st:e], uint32(item))
		st += 4
		e = st + 4
	}
	return bytes
}

func (s Itemset) String() string {
	parts := make([]string, 0, len(s.items))
	for _, item := range s.items {
		parts = append(parts, fmt.Sprint(item))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func FromSlice(sets []Itemset) Iterator {
	var next Iterator
	i := 0
	next = func() (Itemset, error, Iterator) {
		if i >= len(sets) {
			return Itemset{}, nil, nil
		}
		s := sets[i]
		i++
		return s, nil, next
	}
	return next
}

func Do(it Iterator, do func(Itemset) error) error {
	var s Itemset
	var err error
	for s, err, it = it(); it != nil; s, err, it = it() {
		e := do(s)
		if e != nil {
			return e
		}
	}
	return err
}

func Collect(it Iterator) ([]Itemset, error) {
	sets := make([]Itemset, 0, 10)
	err := Do(it, func(s Itemset) error {
		sets = append(sets, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func Sort(sets []Itemset) {
	slices.SortFunc(sets, func(a, b Itemset) int {
		return a.Compare(b)
	})
}
