// Package journal persists computed deficit rows and run metadata to CSV
// files or a SQLite database.
package journal

import (
	"time"

	"github.com/yanickziegler/TWIST/series"
)

// Run is the metadata record of one completed model run.
type Run struct {
	RunID   string
	Created time.Time

	Input string

	// Parameters the run was executed with, kept alongside the outputs so
	// a stored run is reproducible.
	FE         float64
	FTWD       float64
	FTheta     float64
	InitialTWD float64

	Rows     int
	Start    time.Time
	End      time.Time
	FinalTWD float64
	MinTWD   float64
	MaxTWD   float64
}

// Journal records run outputs. RecordRow is called once per timestep in
// input order; RecordRun once after the run completes.
type Journal interface {
	RecordRow(runID string, o series.Output) error
	RecordRun(r Run) error
	Close() error
}
