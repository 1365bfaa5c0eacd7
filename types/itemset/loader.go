package itemset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type InvalidInputError struct {
	Line   int
	Token  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input on line %d at '%s': %s", e.Line, e.Token, e.Reason)
}

// LoadStrings reads one transaction per line, items separated by white
// space. Blank lines are empty transactions.
func LoadStrings(input io.Reader) ([][]string, error) {
	txs := make([][]string, 0, 10)
	err := scan(input, func(line int, cols []string) error {
		txs = append(txs, cols)
		return nil
	})
	if err != nil {
		return nil, err
	}
	errors.Logf("DEBUG", "loaded %d transactions", len(txs))
	return txs, nil
}

// LoadInts is LoadStrings for integer items. A token which is not an
// integer is an InvalidInputError.
func LoadInts(input io.Reader) ([][]int, error) {
	txs := make([][]int, 0, 10)
	err := scan(input, func(line int, cols []string) error {
		tx := make([]int, 0, len(cols))
		for _, col := range cols {
			item, err := strconv.Atoi(col)
			if err != nil {
				return &InvalidInputError{Line: line, Token: col, Reason: "expected an int"}
			}
			tx = append(tx, item)
		}
		txs = append(txs, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	errors.Logf("DEBUG", "loaded %d transactions", len(txs))
	return txs, nil
}

func scan(input io.Reader, do func(line int, cols []string) error) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		err := do(line, strings.Fields(scanner.Text()))
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}
