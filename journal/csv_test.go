package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanickziegler/TWIST/series"
)

func TestCSVJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	ts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordRow("run-1", series.Output{Time: ts, TWD: 4, RWC: 0.96}))
	require.NoError(t, j.RecordRow("run-1", series.Output{Time: ts.Add(time.Hour), TWD: 3.4, RWC: 0.966}))
	require.NoError(t, j.RecordRun(Run{RunID: "run-1"}))
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"time", "twd", "rwc"}, rows[0])
	assert.Equal(t, "2024-06-01T00:00:00Z", rows[1][0])
	assert.Equal(t, "4.000000", rows[1][1])
	assert.Equal(t, "0.960000", rows[1][2])
	assert.Equal(t, "3.400000", rows[2][1])
}
