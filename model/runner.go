package model

import (
	"fmt"
	"time"

	"github.com/yanickziegler/TWIST/series"
)

// Runner drives the deficit recurrence over an ordered record sequence,
// threading the deficit from one step to the next. The recurrence is
// inherently sequential — step i reads the deficit emitted by step i-1 —
// so there is no parallel decomposition of the loop. The accumulator is
// local to one Run call; independent runs may execute concurrently.
type Runner struct {
	Params DeficitParams

	// InitialTWD seeds the deficit state. Zero means full hydration at
	// simulation start, the conventional seed.
	InitialTWD float64
}

// Summary is a lightweight report of one run.
type Summary struct {
	Rows int

	Start time.Time
	End   time.Time

	FinalTWD float64
	MinTWD   float64
	MaxTWD   float64
}

// Run folds the recurrence over recs and returns one output per input, in
// input order. For each record it advances the deficit with StepDeficit,
// derives RWC against the record's pool size, and carries the new deficit
// into the next step.
func (r Runner) Run(recs []series.Record) []series.Output {
	out := make([]series.Output, len(recs))
	twd := r.InitialTWD
	for i, rec := range recs {
		twd = StepDeficit(rec.E, twd, rec.ThetaRel, r.Params)
		out[i] = series.Output{
			Time: rec.Time,
			TWD:  twd,
			RWC:  RelativeWaterContent(rec.W, twd),
		}
	}
	return out
}

// RunFeed is the streaming form of Run: it drains feed in order, passing
// each output to emit, and returns a Summary of the run. Semantics are
// identical to Run; use this for inputs too large to hold in memory or
// when outputs go straight to a journal. A non-nil error from feed or emit
// aborts the run.
func (r Runner) RunFeed(feed series.Feed, emit func(series.Output) error) (Summary, error) {
	if feed == nil {
		return Summary{}, fmt.Errorf("run: feed is required")
	}
	defer feed.Close()

	s := Summary{FinalTWD: r.InitialTWD}
	twd := r.InitialTWD

	for {
		rec, ok, err := feed.Next()
		if err != nil {
			return Summary{}, err
		}
		if !ok {
			break
		}

		twd = StepDeficit(rec.E, twd, rec.ThetaRel, r.Params)
		out := series.Output{
			Time: rec.Time,
			TWD:  twd,
			RWC:  RelativeWaterContent(rec.W, twd),
		}
		if emit != nil {
			if err := emit(out); err != nil {
				return Summary{}, err
			}
		}

		if s.Rows == 0 {
			s.Start = rec.Time
			s.MinTWD = twd
			s.MaxTWD = twd
		} else {
			if twd < s.MinTWD {
				s.MinTWD = twd
			}
			if twd > s.MaxTWD {
				s.MaxTWD = twd
			}
		}
		s.End = rec.Time
		s.FinalTWD = twd
		s.Rows++
	}

	return s, nil
}
