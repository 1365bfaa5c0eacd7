package itemset

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/fim/lattice"
)

// Formatter writes patterns with their raw item values.
type Formatter[T cmp.Ordered] struct {
	Index *Index[T]
}

func (f *Formatter[T]) FileExt() string {
	return ".items"
}

func (f *Formatter[T]) PatternName(n lattice.Node) string {
	return "{" + strings.Join(f.items(n), " ") + "}"
}

// FormatPattern writes "<count> <support> <item> ..." followed by a newline.
func (f *Formatter[T]) FormatPattern(w io.Writer, n lattice.Node) error {
	node := n.(*Node)
	_, err := fmt.Fprintf(w, "%d %.6g %s\n", node.Count(), node.Support().Float(), strings.Join(f.items(n), " "))
	return err
}

func (f *Formatter[T]) items(n lattice.Node) []string {
	s := n.Pattern().(Itemset)
	items := make([]string, 0, s.Level())
	for _, item := range f.Index.Decode(s) {
		items = append(items, fmt.Sprint(item))
	}
	return items
}
