package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "journal.db")
}

func TestAdjustThenDays(t *testing.T) {
	db := testDB(t)

	out, err := runCmd(t, "--db", db, "adjust", "2024-01-01", "150.5")
	require.NoError(t, err)
	assert.Contains(t, out, "adjusted 2024-01-01 by +150.50")

	out, err = runCmd(t, "--db", db, "days")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "+150.50")
}

func TestAdjustRejectsNonNumericAmount(t *testing.T) {
	_, err := runCmd(t, "--db", testDB(t), "adjust", "2024-01-01", "lots")
	assert.Error(t, err)
}

func TestImportIsIdempotent(t *testing.T) {
	db := testDB(t)

	events := `[
		{"date":"2024-01-01","ticket":1,"time":"10:00:00","event_type":"TRADE","pnl":100},
		{"date":"2024-01-02","ticket":2,"time":"11:00:00","event_type":"TRADE","pnl":-30},
		{"date":"2024-01-01","event_type":"DEPOSIT","pnl":500}
	]`
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(events), 0644))

	out, err := runCmd(t, "--db", db, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 events (0 duplicates skipped)")

	// Re-running the same history only re-inserts the ticketless deposit.
	out, err = runCmd(t, "--db", db, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 events (2 duplicates skipped)")
}

func TestDayListsEvents(t *testing.T) {
	db := testDB(t)

	events := `[{"date":"2024-01-01","ticket":9,"time":"10:00:00","symbol":"EURUSD","side":"BUY","event_type":"TRADE","size":0.5,"pnl":25}]`
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(events), 0644))

	_, err := runCmd(t, "--db", db, "import", path)
	require.NoError(t, err)

	out, err := runCmd(t, "--db", db, "day", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "EURUSD")
	assert.Contains(t, out, "+25.00")

	out, err = runCmd(t, "--db", db, "day", "2030-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "no events for 2030-01-01")
}

func TestExportWritesReport(t *testing.T) {
	db := testDB(t)
	outDir := filepath.Join(t.TempDir(), "site")

	_, err := runCmd(t, "--db", db, "adjust", "2024-01-01", "10")
	require.NoError(t, err)

	out, err := runCmd(t, "--db", db, "export", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "static report written to")

	data, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "2024-01-01"))
}

func TestRebuild(t *testing.T) {
	db := testDB(t)

	_, err := runCmd(t, "--db", db, "adjust", "2024-01-01", "10")
	require.NoError(t, err)

	out, err := runCmd(t, "--db", db, "rebuild")
	require.NoError(t, err)
	assert.Contains(t, out, "day aggregates rebuilt")
}

func TestVersion(t *testing.T) {
	// version prints straight to stdout; just make sure the command
	// wires up and runs.
	_, err := runCmd(t, "version")
	require.NoError(t, err)
}

func TestRejectsBadLogLevel(t *testing.T) {
	_, err := runCmd(t, "--db", testDB(t), "--log-level", "loud", "days")
	assert.Error(t, err)
}
