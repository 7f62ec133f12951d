package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	input TEXT NOT NULL,
	f_e REAL NOT NULL,
	f_twd REAL NOT NULL,
	f_theta REAL NOT NULL,
	initial_twd REAL NOT NULL,
	row_count INTEGER NOT NULL,
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL,
	final_twd REAL NOT NULL,
	min_twd REAL NOT NULL,
	max_twd REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS outputs (
	run_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	twd REAL NOT NULL,
	rwc REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_outputs_run ON outputs(run_id, time);
`
