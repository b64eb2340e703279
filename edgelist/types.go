package edgelist

import "errors"

// Sentinel errors for edge-list loading.
var (
	// ErrSourceNotFound indicates the input could not be located or read.
	ErrSourceNotFound = errors.New("edgelist: source not found")

	// ErrMalformedRecord indicates a line without exactly three fields or
	// with a non-integer weight.
	ErrMalformedRecord = errors.New("edgelist: malformed record")
)

// fieldCount is the number of comma-separated fields on every line.
const fieldCount = 3

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Record is one directed road: From → To with a non-negative (by convention)
// integer Weight.
type Record struct {
	From   string
	To     string
	Weight int64
}

// SelfLoop reports whether the record starts and ends at the same intersection.
func (r Record) SelfLoop() bool { return r.From == r.To }
