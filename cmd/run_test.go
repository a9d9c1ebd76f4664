package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/disksched/sim"
)

func textbookScenario(algorithm, direction string) *sim.Scenario {
	return &sim.Scenario{
		DiskSize:  200,
		Head:      53,
		Requests:  sim.RequestSet{98, 183, 37, 122, 14, 124, 65, 67},
		Algorithm: algorithm,
		Direction: direction,
	}
}

func TestRunScenario_TableOutput(t *testing.T) {
	var buf bytes.Buffer
	err := runScenario(&buf, textbookScenario("fcfs", ""), sim.OutputTable, false, 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "=== fcfs Disk Scheduling ===")
	assert.Contains(t, out, "Sequence       : [98 183 37 122 14 124 65 67]")
	assert.Contains(t, out, "Total Movement : 640")
	assert.NotContains(t, out, "track vs step")
}

func TestRunScenario_ScanLabelIncludesDirection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, textbookScenario("scan", "Right"), sim.OutputJSON, false, 0))

	var m sim.Metrics
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "scan-right", m.Algorithm)
	assert.Equal(t, 331, m.TotalMovement)
	assert.Equal(t, 1, m.Summary.BoundarySeeks)
}

func TestRunScenario_WithChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, textbookScenario("sstf", ""), sim.OutputTable, true, 8))

	out := buf.String()
	assert.Contains(t, out, "SSTF (track vs step)")
	// head + 8 serviced tracks
	chart := out[strings.Index(out, "SSTF (track vs step)"):]
	assert.Equal(t, 9, strings.Count(chart, "*"))
}

func TestRunScenario_MissingSelection(t *testing.T) {
	tests := []struct {
		name string
		sc   *sim.Scenario
	}{
		{"no algorithm", textbookScenario("", "")},
		{"scan without direction", textbookScenario("scan", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runScenario(&buf, tt.sc, sim.OutputTable, false, 0)
			assert.ErrorIs(t, err, sim.ErrMissingSelection)
			assert.Empty(t, buf.String(), "nothing is reported for a rejected run")
		})
	}
}

func TestRunScenario_UnknownOutputFormat(t *testing.T) {
	err := runScenario(&bytes.Buffer{}, textbookScenario("fcfs", ""), "csv", false, 0)
	assert.ErrorContains(t, err, "unknown output format")
}

func TestCompareScenario_RanksPolicies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, compareScenario(&buf, textbookScenario("", "")))

	out := buf.String()
	assert.Contains(t, out, "=== Policy Comparison ===")
	for _, label := range []string{"fcfs", "sstf", "scan-left", "scan-right"} {
		assert.Contains(t, out, label)
	}
}

func TestCompareScenario_BadBoundary(t *testing.T) {
	sc := textbookScenario("", "")
	sc.Boundary = "never"
	assert.Error(t, compareScenario(&bytes.Buffer{}, sc))
}

func TestCompareScenario_NegativeDiskSize_Rejected(t *testing.T) {
	// GIVEN a scenario that passed through with out-of-range tracks allowed
	sc := textbookScenario("", "")
	sc.DiskSize = -5

	var buf bytes.Buffer
	err := compareScenario(&buf, sc)

	// THEN no comparison is printed
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk_size")
	assert.Empty(t, buf.String())
}
