package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yanickziegler/TWIST/series"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRow(runID string, o series.Output) error {
	_, err := j.db.Exec(`
		INSERT INTO outputs (run_id, time, twd, rwc)
		VALUES (?, ?, ?, ?)`,
		runID, o.Time, o.TWD, o.RWC,
	)
	return err
}

func (j *SQLiteJournal) RecordRun(r Run) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, input, f_e, f_twd, f_theta, initial_twd,
		 row_count, start_time, end_time, final_twd, min_twd, max_twd)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Input, r.FE, r.FTWD, r.FTheta, r.InitialTWD,
		r.Rows, r.Start, r.End, r.FinalTWD, r.MinTWD, r.MaxTWD,
	)
	return err
}

// GetRun loads one run's metadata by id.
func (j *SQLiteJournal) GetRun(runID string) (Run, error) {
	var r Run
	err := j.db.QueryRow(`
		SELECT run_id, created, input, f_e, f_twd, f_theta, initial_twd,
		       row_count, start_time, end_time, final_twd, min_twd, max_twd
		FROM runs WHERE run_id = ?`, runID).Scan(
		&r.RunID, &r.Created, &r.Input, &r.FE, &r.FTWD, &r.FTheta,
		&r.InitialTWD, &r.Rows, &r.Start, &r.End, &r.FinalTWD,
		&r.MinTWD, &r.MaxTWD,
	)
	return r, err
}

// ListRowsByRunID returns a run's output rows in time order.
func (j *SQLiteJournal) ListRowsByRunID(runID string) ([]series.Output, error) {
	rows, err := j.db.Query(`
		SELECT time, twd, rwc FROM outputs
		WHERE run_id = ? ORDER BY time`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []series.Output
	for rows.Next() {
		var o series.Output
		if err := rows.Scan(&o.Time, &o.TWD, &o.RWC); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
