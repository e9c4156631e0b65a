// Package simulation replays the arcade's three record streams (games,
// customers, transactions) against an Arcade, reporting a per-record
// outcome and an aggregate summary. It is the only layer that parses text
// or writes output; the core packages never touch an io stream.
package simulation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedRecord = errors.New("malformed record")

// Record stream field separators.
const (
	GameSeparator        = '@'
	CustomerSeparator    = '#'
	TransactionSeparator = ','
)

// Records reads a record stream into ordered field arrays: one record per
// line, fields split on sep, blank lines skipped.
func Records(r io.Reader, sep rune) ([][]string, error) {
	var records [][]string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		records = append(records, strings.Split(line, string(sep)))
	}

	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	return records, nil
}
