package support

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/fim/types/itemset"
)

var market = [][]string{
	{"bread", "milk"},
	{"bread", "diaper", "beer", "egg"},
	{"milk", "diaper", "beer", "coke"},
	{"bread", "milk", "diaper", "beer"},
	{"bread", "milk", "diaper", "coke"},
}

func TestOraclesAgree(x *testing.T) {
	t := assert.New(x)
	db, idx, err := itemset.Encode(market)
	t.Nil(err)
	scan := NewScan(db)
	vert := NewVertical(db.Vertical())
	cases := []struct {
		items []string
		count int
	}{
		{[]string{}, 5},
		{[]string{"bread"}, 4},
		{[]string{"egg"}, 1},
		{[]string{"bread", "milk"}, 3},
		{[]string{"bread", "coke"}, 1},
		{[]string{"bread", "milk", "diaper"}, 2},
		{[]string{"bread", "milk", "diaper", "beer"}, 1},
		{[]string{"beer", "coke", "egg"}, 0},
	}
	for _, c := range cases {
		s, err := idx.Itemset(c.items...)
		t.Nil(err)
		t.Equal(c.count, scan.Count(s), "scan %v", c.items)
		t.Equal(c.count, vert.Count(s), "vertical %v", c.items)
	}
	s, _ := idx.Itemset("bread", "milk")
	t.Equal(itemset.Support{Count: 3, N: 5}, Support(scan, s, db.N()))
}

func TestOraclesUnknownItem(x *testing.T) {
	t := assert.New(x)
	db, err := itemset.NewDatabase([][]int32{{0}, {0, 1}}, 3)
	t.Nil(err)
	vert := NewVertical(db.Vertical())
	scan := NewScan(db)
	t.Equal(0, vert.Count(itemset.New(2)))
	t.Equal(0, vert.Count(itemset.New(0, 2)))
	t.Equal(0, scan.Count(itemset.New(0, 2)))
	t.Equal(1, vert.Count(itemset.New(0, 1)))
}
