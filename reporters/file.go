package reporters

import (
	"bufio"
	"os"
)

import (
	"github.com/timtadh/fim/config"
	"github.com/timtadh/fim/lattice"
)

// File writes one formatted pattern per line to <patterns><ext> in the
// output directory.
type File struct {
	fmt      lattice.Formatter
	f        *os.File
	patterns *bufio.Writer
}

func NewFile(c *config.Config, fmt lattice.Formatter, patternsFilename string) (*File, error) {
	f, err := os.Create(c.OutputFile(patternsFilename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		fmt:      fmt,
		f:        f,
		patterns: bufio.NewWriter(f),
	}
	return r, nil
}

func (r *File) Report(n lattice.Node) error {
	return r.fmt.FormatPattern(r.patterns, n)
}

func (r *File) Close() error {
	err := r.patterns.Flush()
	if err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
