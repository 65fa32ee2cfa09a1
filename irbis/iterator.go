package irbis

import (
	"bufio"
	"io"
	"strings"
)

// RecordIterator walks an export stream one logical record at a time.
// Use NewRecordIterator to create one, then:
//
//	it := irbis.NewRecordIterator(r)
//	for it.Next() {
//		lines := it.Record()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type RecordIterator struct {
	scanner *bufio.Scanner
	record  []string
	done    bool
}

// NewRecordIterator creates a RecordIterator reading from r.
func NewRecordIterator(r io.Reader) *RecordIterator {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &RecordIterator{scanner: scanner}
}

// Next advances to the next logical record. Consecutive sentinel lines are
// skipped; a trailing record with no terminating sentinel is still returned.
func (it *RecordIterator) Next() bool {
	if it.done {
		return false
	}

	var body []string
	for it.scanner.Scan() {
		line := strings.TrimRight(it.scanner.Text(), "\r")
		if strings.TrimSpace(line) == RecordSentinel {
			if len(body) == 0 {
				continue
			}
			it.record = body
			return true
		}
		body = append(body, line)
	}

	it.done = true
	if len(body) > 0 {
		it.record = body
		return true
	}
	return false
}

// Record returns the lines of the current logical record. It is only valid
// after a call to Next that returned true.
func (it *RecordIterator) Record() []string {
	return it.record
}

// Err returns any error hit while reading the underlying stream.
func (it *RecordIterator) Err() error {
	return it.scanner.Err()
}
