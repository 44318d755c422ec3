package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
database:
  path: /tmp/test-journal.db
server:
  listen: 0.0.0.0:8080
ledger:
  baseline_equity: 2500.5
export:
  output_dir: ./out
log_level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-journal.db", cfg.Database.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Listen)
	assert.InDelta(t, 2500.5, cfg.Ledger.BaselineEquity, 1e-9)
	assert.Equal(t, "./out", cfg.Export.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{
  "database": {"path": "./j.db"},
  "server": {"listen": "127.0.0.1:9000"},
  "ledger": {"baseline_equity": 100},
  "export": {"output_dir": "./site"},
  "log_level": "info"
}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "./j.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Listen)
	assert.InDelta(t, 100.0, cfg.Ledger.BaselineEquity, 1e-9)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, Default().Database.Path, cfg.Database.Path)
	assert.Equal(t, Default().Server.Listen, cfg.Server.Listen)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JOURNAL_DB_PATH", "/var/data/journal.db")
	t.Setenv("JOURNAL_LISTEN", "0.0.0.0:7777")
	t.Setenv("JOURNAL_BASELINE_EQUITY", "1234.5")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/data/journal.db", cfg.Database.Path)
	assert.Equal(t, "0.0.0.0:7777", cfg.Server.Listen)
	assert.InDelta(t, 1234.5, cfg.Ledger.BaselineEquity, 1e-9)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadTimeout(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Server.ReadTimeout = "soon"
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Ledger.BaselineEquity = 999

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 999.0, got.Ledger.BaselineEquity, 1e-9)
}
