// Package series defines the input and output rows of a deficit run and
// reads column-mapped CSV tables into them.
package series

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Record is one input timestep.
type Record struct {
	Time     time.Time
	E        float64 // transpiration
	ThetaRel float64 // relative soil moisture, nominally [0,1], not clamped
	W        float64 // storage-pool size, must be >0 for a meaningful RWC
}

// Output is one computed timestep.
type Output struct {
	Time time.Time
	TWD  float64 // tree water deficit, same unit as E
	RWC  float64 // relative water content, floored at 0, may exceed 1
}

// ColumnMap binds the logical roles of the model to the column names of a
// source table, so the same run works against differently-named exports.
// Time, E and Theta are always required. Exactly one of WoodMass and Pool
// must be set: Pool reads a precomputed storage size per row, WoodMass
// reads dry biomass and derives the pool through the reader's pool
// function.
type ColumnMap struct {
	Time     string
	E        string
	Theta    string
	WoodMass string
	Pool     string
}

// Feed yields input records one at a time, in table order.
// Implementations return ok=false with a nil error at end of input.
type Feed interface {
	Next() (r Record, ok bool, err error)
	Close() error
}

// SliceFeed serves an in-memory record slice as a Feed.
type SliceFeed struct {
	Records []Record
	idx     int
}

func (f *SliceFeed) Next() (Record, bool, error) {
	if f.idx >= len(f.Records) {
		return Record{}, false, nil
	}
	r := f.Records[f.idx]
	f.idx++
	return r, true, nil
}

func (f *SliceFeed) Close() error { return nil }

// MissingFieldError reports every required column absent from a table
// header, not just the first one found.
type MissingFieldError struct {
	fields []string
}

func newMissingFieldError(fields []string) *MissingFieldError {
	sort.Strings(fields)
	return &MissingFieldError{fields: fields}
}

// Missing returns the absent column names, sorted.
func (e *MissingFieldError) Missing() []string {
	return e.fields
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.fields, ", "))
}
