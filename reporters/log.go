package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fim/lattice"
)

type Log struct {
	fmtr   lattice.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr lattice.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(n lattice.Node) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v %v", lr.prefix, lr.count, lr.fmtr.PatternName(n), n)
	} else {
		errors.Logf(lr.level, "%v %v %v", lr.count, lr.fmtr.PatternName(n), n)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
