package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses a single "source,target,weight" line.
// Every field is trimmed; the weight must be a base-10 int64.
func ParseLine(line string) (Record, error) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		return Record{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, fieldCount, len(parts))
	}

	weight, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: weight %q is not an integer", ErrMalformedRecord, strings.TrimSpace(parts[2]))
	}

	return Record{
		From:   strings.TrimSpace(parts[0]),
		To:     strings.TrimSpace(parts[1]),
		Weight: weight,
	}, nil
}

// Parse reads every line of r and returns the records in input order.
//
// The first malformed line aborts parsing; the returned error wraps
// ErrMalformedRecord and names the 1-based line number, and no records are
// returned. Read failures wrap ErrSourceNotFound.
//
// Complexity: O(total input size).
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		records []Record
		rec     Record
		err     error
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		if rec, err = ParseLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read after line %d: %v", ErrSourceNotFound, lineNo, err)
	}

	return records, nil
}
