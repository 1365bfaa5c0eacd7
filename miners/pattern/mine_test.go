package pattern

import "testing"
import "github.com/stretchr/testify/assert"

import (
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

func TestProjectKeepsSuffixes(x *testing.T) {
	t := assert.New(x)
	db := [][]int32{{0, 1, 2}, {1, 2}, {0, 2}, {2}}
	t.Equal([][]int32{{2}, {2}}, project(db, 1))
	t.Equal([][]int32{{1, 2}, {2}}, project(db, 0))
	t.Equal([][]int32{}, project(db, 2), "nothing follows the largest item")
	t.Equal([][]int32{}, project(db, 7))

	proj := project(db, 0)
	t.True(&proj[0][0] == &db[0][1])
}

func TestGrowCountsInProjection(x *testing.T) {
	t := assert.New(x)
	db, err := itemset.NewDatabase([][]int32{
		{0, 1, 2},
		{0, 2},
		{1, 2},
		{2},
	}, 3)
	t.Nil(err)
	m := NewMiner(db)
	patterns := itemset.NewPatterns(db.N())
	t.Nil(m.grow(db.Transactions(), itemset.New(3), 1, patterns))
	c, has := patterns.Count(itemset.New(2, 3))
	t.True(has)
	t.Equal(4, c, "counts come from the database handed to grow")
	c, has = patterns.Count(itemset.New(0, 2, 3))
	t.True(has)
	t.Equal(2, c)
	c, has = patterns.Count(itemset.New(0, 1, 2, 3))
	t.True(has)
	t.Equal(1, c)
	t.False(patterns.Has(itemset.New(3)), "the prefix itself is not emitted")
}
