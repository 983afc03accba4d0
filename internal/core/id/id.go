// Package id provides numeric identifiers and their allocation.
// Every table allocates ids from its own Sequence, so ids are sequential per table.
package id

import (
	"strconv"
	"sync/atomic"
)

// ID is the numeric primary key shared by all entities.
type ID = int64

// Parse converts a path segment to ID. Only positive values are valid.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// Sequence is a monotonically increasing id allocator starting at 1.
// The zero value is ready to use.
type Sequence struct {
	last atomic.Int64
}

// Next allocates the next id.
func (s *Sequence) Next() ID {
	return s.last.Add(1)
}

// Current returns the last allocated id, 0 if none.
func (s *Sequence) Current() ID {
	return s.last.Load()
}
