package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/yanickziegler/TWIST/series"
)

// CSVJournal writes one output row per timestep. Run metadata is not
// stored in the CSV sink; the CLI prints the summary instead.
type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "twd", "rwc"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordRow(runID string, o series.Output) error {
	if err := j.w.Write([]string{
		o.Time.Format(time.RFC3339),
		f(o.TWD),
		f(o.RWC),
	}); err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) RecordRun(r Run) error { return nil }

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
