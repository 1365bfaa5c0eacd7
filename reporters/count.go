package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/config"
	"github.com/timtadh/fim/lattice"
)

// Count writes the number of patterns it saw, one per level followed by the
// total, when it is closed.
type Count struct {
	config   *config.Config
	filename string
	levels   []int
	count    int
}

func NewCount(c *config.Config, filename string) *Count {
	return &Count{
		config:   c,
		filename: filename,
	}
}

func (r *Count) Report(n lattice.Node) error {
	level := n.Pattern().Level()
	for len(r.levels) < level {
		r.levels = append(r.levels, 0)
	}
	r.levels[level-1]++
	r.count++
	return nil
}

func (r *Count) Count() int {
	return r.count
}

func (r *Count) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	for i, c := range r.levels {
		_, err := fmt.Fprintf(f, "level %d: %d\n", i+1, c)
		if err != nil {
			f.Close()
			return err
		}
	}
	_, perr := fmt.Fprintf(f, "total: %v\n", r.count)
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	errors.Logf("INFO", "counted %d patterns", r.count)
	return nil
}
