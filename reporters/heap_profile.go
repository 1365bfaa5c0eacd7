package reporters

import (
	"fmt"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/fim/lattice"
)

// HeapProfile writes a heap profile to <prefix>-<n>.heap after every
// `every` patterns, starting once `after` patterns have been seen.
type HeapProfile struct {
	prefix       string
	after, every int
	count        int
	written      int
}

func NewHeapProfile(prefix string, after, every int) (*HeapProfile, error) {
	if every <= 0 {
		return nil, fmt.Errorf("heap-profile every must be > 0, got %v", every)
	}
	return &HeapProfile{prefix: prefix, after: after, every: every}, nil
}

func (hp *HeapProfile) Report(n lattice.Node) error {
	hp.count++
	if hp.count <= hp.after || (hp.count-hp.after)%hp.every != 0 {
		return nil
	}
	f, err := os.Create(fmt.Sprintf("%s-%d.heap", hp.prefix, hp.written))
	if err != nil {
		return err
	}
	hp.written++
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (hp *HeapProfile) Close() error {
	return nil
}
