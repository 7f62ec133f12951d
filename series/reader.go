package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// timeLayouts are tried in order when parsing the timestamp column.
// Hourly dendrometer exports use either RFC3339 or a plain space-separated
// layout, depending on the tool that produced them.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Reader streams Records from a CSV table. Paths ending in ".xz" are
// decompressed transparently.
//
// The header row is resolved against the ColumnMap before the first record
// is produced; if any required column is absent, NewReader fails with a
// *MissingFieldError listing all of them and no rows are read.
type Reader struct {
	f   *os.File
	r   *csv.Reader
	cm  ColumnMap
	pos colIndex

	// poolOf derives a pool size from dry biomass when the map names a
	// wood-mass column. Nil when the map names a pool column directly.
	poolOf func(mWoodDry float64) float64

	row  int // 1-based data row counter, for error context
	rows int
}

type colIndex struct {
	time, e, theta, mass int
}

// NewReader opens the table at path and validates its header. poolOf is
// required when cm.WoodMass is set and ignored otherwise.
func NewReader(path string, cm ColumnMap, poolOf func(float64) float64) (*Reader, error) {
	if cm.Time == "" || cm.E == "" || cm.Theta == "" {
		return nil, fmt.Errorf("column map: time, transpiration and soil moisture columns are required")
	}
	if (cm.WoodMass == "") == (cm.Pool == "") {
		return nil, fmt.Errorf("column map: exactly one of wood-mass and pool columns must be set")
	}
	if cm.WoodMass != "" && poolOf == nil {
		return nil, fmt.Errorf("column map names wood-mass column %q but no pool function was given", cm.WoodMass)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var src io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		src, err = xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rd := &Reader{f: f, r: cr, cm: cm, poolOf: poolOf}
	if err := rd.resolveHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return rd, nil
}

// resolveHeader reads the first row and maps each configured column name to
// its index. Missing columns are collected as a set so the error names every
// one of them.
func (rd *Reader) resolveHeader() error {
	header, err := rd.r.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: empty table, no header row", rd.f.Name())
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	mass := rd.cm.WoodMass
	if mass == "" {
		mass = rd.cm.Pool
	}

	var missing []string
	find := func(name string) int {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	rd.pos = colIndex{
		time:  find(rd.cm.Time),
		e:     find(rd.cm.E),
		theta: find(rd.cm.Theta),
		mass:  find(mass),
	}
	if len(missing) > 0 {
		return newMissingFieldError(missing)
	}
	return nil
}

// Next returns the next record in table order. ok is false with a nil error
// at end of input. A malformed row aborts the read with its row number;
// blank lines are skipped by the CSV layer.
func (rd *Reader) Next() (Record, bool, error) {
	row, err := rd.r.Read()
	if err == io.EOF {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	rd.row++

	need := rd.pos.time
	for _, i := range []int{rd.pos.e, rd.pos.theta, rd.pos.mass} {
		if i > need {
			need = i
		}
	}
	if len(row) <= need {
		return Record{}, false, fmt.Errorf("row %d: %d fields, need at least %d", rd.row, len(row), need+1)
	}

	t, err := parseTime(row[rd.pos.time])
	if err != nil {
		return Record{}, false, fmt.Errorf("row %d: %w", rd.row, err)
	}
	e, err := parseFloat(rd.cm.E, row[rd.pos.e])
	if err != nil {
		return Record{}, false, fmt.Errorf("row %d: %w", rd.row, err)
	}
	theta, err := parseFloat(rd.cm.Theta, row[rd.pos.theta])
	if err != nil {
		return Record{}, false, fmt.Errorf("row %d: %w", rd.row, err)
	}

	var w float64
	if rd.cm.Pool != "" {
		w, err = parseFloat(rd.cm.Pool, row[rd.pos.mass])
		if err != nil {
			return Record{}, false, fmt.Errorf("row %d: %w", rd.row, err)
		}
	} else {
		m, err := parseFloat(rd.cm.WoodMass, row[rd.pos.mass])
		if err != nil {
			return Record{}, false, fmt.Errorf("row %d: %w", rd.row, err)
		}
		w = rd.poolOf(m)
	}

	rd.rows++
	return Record{Time: t, E: e, ThetaRel: theta, W: w}, true, nil
}

// Rows reports how many records have been produced so far.
func (rd *Reader) Rows() int { return rd.rows }

func (rd *Reader) Close() error {
	if rd.f != nil {
		return rd.f.Close()
	}
	return nil
}

// ReadAll drains a feed into a slice, preserving input order.
func ReadAll(feed Feed) ([]Record, error) {
	var recs []Record
	for {
		r, ok, err := feed.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return recs, nil
		}
		recs = append(recs, r)
	}
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad time %q", s)
}

func parseFloat(col, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", col, s)
	}
	return v, nil
}
