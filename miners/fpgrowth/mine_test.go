package fpgrowth

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/fim/fptree"
	"github.com/timtadh/fim/miners"
	"github.com/timtadh/fim/types/itemset"
)

// triangle has every pair of {0 1 2} twice and the triple once.
func triangle(t *assert.Assertions) *itemset.Database {
	db, err := itemset.NewDatabase([][]int32{
		{0, 1, 2},
		{0, 1},
		{0, 2},
		{1, 2},
	}, 3)
	t.Nil(err)
	return db
}

func engines(db *itemset.Database) []miners.Miner {
	return []miners.Miner{NewMiner(db)}
}

func TestTriangle(x *testing.T) {
	t := assert.New(x)
	for _, m := range engines(triangle(t)) {
		patterns, err := m.Run(.5)
		t.Nil(err)
		t.Equal(6, patterns.Size())
		for _, s := range []itemset.Itemset{itemset.New(0), itemset.New(1), itemset.New(2)} {
			c, has := patterns.Count(s)
			t.True(has)
			t.Equal(3, c)
		}
		for _, s := range []itemset.Itemset{itemset.New(0, 1), itemset.New(0, 2), itemset.New(1, 2)} {
			c, has := patterns.Count(s)
			t.True(has)
			t.Equal(2, c)
		}
		t.False(patterns.Has(itemset.New(0, 1, 2)))
		t.Equal(2, patterns.MaxLevel())
	}
}

func TestZeroThresholdFindsEveryOccurringItemset(x *testing.T) {
	t := assert.New(x)
	for _, m := range engines(triangle(t)) {
		patterns, err := m.Run(0)
		t.Nil(err)
		t.Equal(7, patterns.Size())
		c, has := patterns.Count(itemset.New(0, 1, 2))
		t.True(has)
		t.Equal(1, c)
	}
}

func TestFullThreshold(x *testing.T) {
	t := assert.New(x)
	for _, m := range engines(triangle(t)) {
		patterns, err := m.Run(1)
		t.Nil(err)
		t.Equal(0, patterns.Size())
		t.Equal(4, patterns.N())
	}
	db, err := itemset.NewDatabase([][]int32{{0, 1}, {0, 1, 2}}, 3)
	t.Nil(err)
	for _, m := range engines(db) {
		patterns, err := m.Run(1)
		t.Nil(err)
		t.Equal(3, patterns.Size())
		t.True(patterns.Has(itemset.New(0, 1)))
		t.False(patterns.Has(itemset.New(2)))
	}
}

func TestEmptyDatabase(x *testing.T) {
	t := assert.New(x)
	db, err := itemset.NewDatabase([][]int32{}, 0)
	t.Nil(err)
	for _, m := range engines(db) {
		patterns, err := m.Run(.5)
		t.Nil(err)
		t.Equal(0, patterns.Size())
		t.Equal(0, patterns.N())
	}
}

func TestEmptyTransactions(x *testing.T) {
	t := assert.New(x)
	db, err := itemset.NewDatabase([][]int32{{}, {0}, {}, {0}}, 1)
	t.Nil(err)
	for _, m := range engines(db) {
		patterns, err := m.Run(.5)
		t.Nil(err)
		c, has := patterns.Count(itemset.New(0))
		t.True(has)
		t.Equal(2, c)
		patterns, err = m.Run(.6)
		t.Nil(err)
		t.Equal(0, patterns.Size())
	}
}

func TestInvalidThreshold(x *testing.T) {
	t := assert.New(x)
	for _, m := range engines(triangle(t)) {
		for _, s := range []float64{-.1, 1.5} {
			_, err := m.Run(s)
			t.NotNil(err)
			_, ok := err.(*miners.InvalidThresholdError)
			t.True(ok, "%T", err)
		}
		_, err := m.Results()
		_, ok := err.(*miners.NotRunError)
		t.True(ok, "a failed run must not leave results behind")
	}
}

func TestResults(x *testing.T) {
	t := assert.New(x)
	for _, m := range engines(triangle(t)) {
		_, err := m.Results()
		t.NotNil(err)
		_, ok := err.(*miners.NotRunError)
		t.True(ok, "%T", err)
		first, err := m.Run(.5)
		t.Nil(err)
		got, err := m.Results()
		t.Nil(err)
		t.True(first == got)
		second, err := m.Run(.5)
		t.Nil(err)
		t.True(first.Equals(second))
		t.False(first == second, "every run recomputes")
	}
}

// Every item occurs three times, so transactions are inserted in item order
// and the three 3 nodes hang off different branches.
func branching(t *assert.Assertions) *itemset.Database {
	db, err := itemset.NewDatabase([][]int32{
		{0, 1, 3},
		{0, 2, 3},
		{0, 1, 2, 3},
		{1, 2},
	}, 4)
	t.Nil(err)
	return db
}

func TestConditionalTreeMergesPaths(x *testing.T) {
	t := assert.New(x)
	m := NewMiner(branching(t))
	tree := m.tree(2)
	t.Equal(9, tree.Size())
	t.Equal(3, tree.Support(3))
	t.Nil(m.tree(4))

	base := tree.ConditionalBase(3)
	t.Equal(3, len(base))
	cond := fptree.Build(base, 2)
	t.Equal(4, cond.Size())
	t.Equal(3, cond.Support(0))
	t.Equal(2, cond.Support(1))
	t.Equal(2, cond.Support(2))

	patterns, err := m.Run(.5)
	t.Nil(err)
	for _, s := range []itemset.Itemset{itemset.New(0, 1, 3), itemset.New(0, 2, 3), itemset.New(1, 2)} {
		c, has := patterns.Count(s)
		t.True(has, "%v", s)
		t.Equal(2, c, "%v", s)
	}
	c, has := patterns.Count(itemset.New(0, 3))
	t.True(has)
	t.Equal(3, c)
	t.False(patterns.Has(itemset.New(1, 2, 3)))
	t.False(patterns.Has(itemset.New(0, 1, 2)))
	t.Equal(3, patterns.MaxLevel())
}
