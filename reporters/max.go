package reporters

import (
	"github.com/timtadh/fim/lattice"
	"github.com/timtadh/fim/miners"
)

// Max passes on only the maximal patterns: those with no frequent child.
type Max struct {
	Reporter miners.Reporter
}

func NewMax(reporter miners.Reporter) *Max {
	return &Max{
		Reporter: reporter,
	}
}

func (r *Max) Report(n lattice.Node) error {
	if ismax, err := n.Maximal(); err != nil {
		return err
	} else if ismax {
		return r.Reporter.Report(n)
	}
	return nil
}

func (r *Max) Close() error {
	return r.Reporter.Close()
}

// Closed passes on only the closed patterns: those with no child of equal
// count.
type Closed struct {
	Reporter miners.Reporter
}

func NewClosed(reporter miners.Reporter) *Closed {
	return &Closed{
		Reporter: reporter,
	}
}

func (r *Closed) Report(n lattice.Node) error {
	if closed, err := n.Closed(); err != nil {
		return err
	} else if closed {
		return r.Reporter.Report(n)
	}
	return nil
}

func (r *Closed) Close() error {
	return r.Reporter.Close()
}
