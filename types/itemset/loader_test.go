package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"strings"
)

func TestLoadStrings(x *testing.T) {
	t := assert.New(x)
	txs, err := LoadStrings(strings.NewReader("bread milk\n\n  diaper\tbeer  \n"))
	t.Nil(err)
	t.Equal([][]string{{"bread", "milk"}, {}, {"diaper", "beer"}}, txs)
}

func TestLoadInts(x *testing.T) {
	t := assert.New(x)
	txs, err := LoadInts(strings.NewReader("10 1 5 7\n213 2 5 1\n-3 4\n"))
	t.Nil(err)
	t.Equal([][]int{{10, 1, 5, 7}, {213, 2, 5, 1}, {-3, 4}}, txs)
}

func TestLoadIntsRejectsWords(x *testing.T) {
	t := assert.New(x)
	_, err := LoadInts(strings.NewReader("1 2\n3 four\n"))
	t.NotNil(err)
	e, ok := err.(*InvalidInputError)
	t.True(ok, "%T", err)
	t.Equal(2, e.Line)
	t.Equal("four", e.Token)
	t.Contains(e.Error(), "line 2")
}
