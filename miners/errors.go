package miners

import (
	"fmt"
	"math"
)

type InvalidThresholdError struct {
	MinSupport float64
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("min support %v is outside [0, 1]", e.MinSupport)
}

// NotRunError is returned when results are asked for before a miner ran.
type NotRunError struct {
	Miner string
}

func (e *NotRunError) Error() string {
	return fmt.Sprintf("%v has not been run", e.Miner)
}

type UnknownMinerError struct {
	Name string
}

func (e *UnknownMinerError) Error() string {
	return fmt.Sprintf("unknown miner '%v'", e.Name)
}

func CheckThreshold(minSupport float64) error {
	if math.IsNaN(minSupport) || minSupport < 0 || minSupport > 1 {
		return &InvalidThresholdError{MinSupport: minSupport}
	}
	return nil
}
