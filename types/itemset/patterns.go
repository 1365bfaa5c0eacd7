package itemset

import (
	"fmt"
	"math"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
)

// Support is the exact fraction Count/N.
type Support struct {
	Count int
	N     int
}

func (s Support) Float() float64 {
	if s.N == 0 {
		return 0
	}
	return float64(s.Count) / float64(s.N)
}

func (s Support) String() string {
	return fmt.Sprintf("%d/%d", s.Count, s.N)
}

// MinCount converts a relative threshold into the smallest count c >= 1 with
// c/n >= minSupport. Every miner filters with it so they all agree on how a
// fraction rounds.
func MinCount(minSupport float64, n int) int {
	if n <= 0 {
		return 1
	}
	c := int(math.Ceil(minSupport * float64(n)))
	for c > 1 && float64(c-1)/float64(n) >= minSupport {
		c--
	}
	for c <= n && float64(c)/float64(n) < minSupport {
		c++
	}
	if c < 1 {
		c = 1
	}
	return c
}

// Patterns is the frequent pattern set: itemset -> count. It only grows and
// the count recorded for an itemset never changes.
type Patterns struct {
	n      int
	table  *hashtable.LinearHash
	levels [][]Itemset
}

func NewPatterns(n int) *Patterns {
	return &Patterns{
		n:      n,
		table:  hashtable.NewLinearHash(),
		levels: make([][]Itemset, 1, 10),
	}
}

func (p *Patterns) N() int {
	return p.n
}

func (p *Patterns) Size() int {
	return p.table.Size()
}

// Add records s with count. Adding a pattern a second time with the same
// count is a no-op; with a different count it is an error since two
// computations of the same support disagree.
func (p *Patterns) Add(s Itemset, count int) error {
	if s.Empty() {
		return errors.Errorf("the empty itemset is not a pattern")
	}
	if count <= 0 || count > p.n {
		return errors.Errorf("pattern %v has count %d outside [1, %d]", s, count, p.n)
	}
	if p.table.Has(s) {
		old, err := p.table.Get(s)
		if err != nil {
			return err
		}
		if old.(int) != count {
			return errors.Errorf("pattern %v counted twice: %d != %d", s, old.(int), count)
		}
		return nil
	}
	err := p.table.Put(s, count)
	if err != nil {
		return err
	}
	for len(p.levels) <= s.Level() {
		p.levels = append(p.levels, nil)
	}
	p.levels[s.Level()] = append(p.levels[s.Level()], s)
	return nil
}

func (p *Patterns) Has(s Itemset) bool {
	return p.table.Has(s)
}

func (p *Patterns) Count(s Itemset) (int, bool) {
	if !p.table.Has(s) {
		return 0, false
	}
	c, err := p.table.Get(s)
	if err != nil {
		return 0, false
	}
	return c.(int), true
}

func (p *Patterns) Support(s Itemset) (Support, bool) {
	c, has := p.Count(s)
	if !has {
		return Support{}, false
	}
	return Support{Count: c, N: p.n}, true
}

// MaxLevel is the size of the largest pattern.
func (p *Patterns) MaxLevel() int {
	for k := len(p.levels) - 1; k > 0; k-- {
		if len(p.levels[k]) > 0 {
			return k
		}
	}
	return 0
}

// Level returns the patterns of size k in canonical order.
func (p *Patterns) Level(k int) []Itemset {
	if k <= 0 || k >= len(p.levels) {
		return []Itemset{}
	}
	level := make([]Itemset, len(p.levels[k]))
	copy(level, p.levels[k])
	Sort(level)
	return level
}

// Itemsets returns every pattern, smallest first and canonical order within
// a size.
func (p *Patterns) Itemsets() []Itemset {
	all := make([]Itemset, 0, p.Size())
	for k := 1; k < len(p.levels); k++ {
		all = append(all, p.Level(k)...)
	}
	return all
}

// Covers is true when every pattern of o is in p with the same count.
func (p *Patterns) Covers(o *Patterns) bool {
	if p.n != o.n {
		return false
	}
	for k := 1; k < len(o.levels); k++ {
		for _, s := range o.levels[k] {
			a, has := p.Count(s)
			if !has {
				return false
			}
			b, _ := o.Count(s)
			if a != b {
				return false
			}
		}
	}
	return true
}

func (p *Patterns) Equals(o *Patterns) bool {
	return p.Size() == o.Size() && p.Covers(o)
}

func (p *Patterns) String() string {
	return fmt.Sprintf("<Patterns %d of %d transactions>", p.Size(), p.n)
}
