//go:build basic

// Package integration contains integration tests for hivetrend.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runHivetrend runs the shared binary with the given args and returns stdout.
func runHivetrend(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(getHivetrendBinary(), args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.NoError(t, err, "command failed: %s\nstderr: %s", cmd.String(), stderr.String())
	return stdout.String()
}

func TestChartCSVOutput(t *testing.T) {
	dir := t.TempDir()
	dataFile, err := writeSampleExport(dir)
	require.NoError(t, err)

	out := runHivetrend(t, dir,
		"chart", dataFile,
		"--colonies", "Hive 1",
		"--range", "all",
		"--output", "csv",
		"--snapshot-backend", "none")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,ordinal,colony,metric,value", lines[0])
	assert.Equal(t, "2024-04-01,,Hive 1,weight,32.5", lines[1])
	assert.Equal(t, "2024-04-08,,Hive 1,weight,33.1", lines[2])
}

func TestChartDefaultsToFirstColony(t *testing.T) {
	dir := t.TempDir()
	dataFile, err := writeSampleExport(dir)
	require.NoError(t, err)

	out := runHivetrend(t, dir,
		"chart", dataFile,
		"--range", "all",
		"--output", "csv",
		"--snapshot-backend", "none")

	assert.Contains(t, out, "Hive 1")
	assert.NotContains(t, out, "Hive 2")
}

func TestChartMiteRateMetric(t *testing.T) {
	dir := t.TempDir()
	dataFile, err := writeSampleExport(dir)
	require.NoError(t, err)

	out := runHivetrend(t, dir,
		"chart", dataFile,
		"--colonies", "Hive 1",
		"--metric", "mite-rate",
		"--range", "all",
		"--output", "csv",
		"--snapshot-backend", "none")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// The second inspection has no mite count, so only one row survives.
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-04-01,,Hive 1,mite-rate,2.0", lines[1])
}

func TestColoniesJSONOutput(t *testing.T) {
	dir := t.TempDir()
	dataFile, err := writeSampleExport(dir)
	require.NoError(t, err)

	out := runHivetrend(t, dir,
		"colonies", dataFile,
		"--output", "json",
		"--snapshot-backend", "none")

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "Hive 1", summaries[0]["colony"])
	assert.Equal(t, "Hive 2", summaries[1]["colony"])
	assert.Equal(t, float64(2), summaries[0]["entries"])
}

func TestExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	dataFile, err := writeSampleExport(dir)
	require.NoError(t, err)
	exportFile := filepath.Join(dir, "export.csv")

	runHivetrend(t, dir,
		"export", dataFile,
		"--output-file", exportFile,
		"--snapshot-backend", "none")

	exported, err := os.ReadFile(exportFile)
	require.NoError(t, err)

	// The export re-ingests cleanly and charts identically.
	reDataFile := filepath.Join(dir, "again.csv")
	require.NoError(t, os.WriteFile(reDataFile, exported, 0o644))

	first := runHivetrend(t, dir,
		"chart", dataFile, "--colonies", "Hive 1", "--range", "all",
		"--output", "csv", "--snapshot-backend", "none")
	second := runHivetrend(t, dir,
		"chart", reDataFile, "--colonies", "Hive 1", "--range", "all",
		"--output", "csv", "--snapshot-backend", "none")
	assert.Equal(t, first, second)
}

func TestMetricsReference(t *testing.T) {
	dir := t.TempDir()

	// The metrics command is static and needs no data file.
	out := runHivetrend(t, dir,
		"metrics",
		"--output", "json",
		"--snapshot-backend", "none")

	assert.Contains(t, out, "weight-delta")
	assert.Contains(t, out, "mite-rate")
	assert.Contains(t, out, "strength")
}

func TestSnapshotStatusWithSQLite(t *testing.T) {
	dir := t.TempDir()
	dataFile, err := writeSampleExport(dir)
	require.NoError(t, err)
	dbPath := filepath.Join(dir, "snapshots.db")

	runHivetrend(t, dir,
		"chart", dataFile,
		"--range", "all",
		"--output", "csv",
		"--snapshot-backend", "sqlite",
		"--snapshot-db-connect", dbPath)

	out := runHivetrend(t, dir,
		"snapshot", "status",
		"--snapshot-backend", "sqlite",
		"--snapshot-db-connect", dbPath)

	assert.Contains(t, out, "sqlite")
	assert.Contains(t, out, "1")
}

func TestVersionCommand(t *testing.T) {
	out := runHivetrend(t, t.TempDir(), "version")
	assert.Contains(t, out, "hivetrend CLI")
}
