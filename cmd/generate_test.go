package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/disksched/sim"
)

func TestWriteGeneratedScenario_LoadsBackAndRuns(t *testing.T) {
	// GIVEN a generated SCAN scenario
	var buf bytes.Buffer
	cfg := sim.GeneratorConfig{Seed: 42, NumRequests: 12, DiskSize: 200, Algorithm: "scan", Direction: "left"}
	require.NoError(t, writeGeneratedScenario(&buf, cfg))

	// WHEN the YAML is parsed with the strict scenario parser
	sc, err := sim.ParseScenario(buf.Bytes())
	require.NoError(t, err)

	// THEN it is runnable and in range
	assert.Len(t, sc.Requests, 12)
	require.NoError(t, sim.ValidateRange(sc.Requests, sc.Head, sc.Extent()))
	result, err := sc.Run()
	require.NoError(t, err)
	assert.Len(t, result.Sequence, 12)
}

func TestWriteGeneratedScenario_SameSeedSameOutput(t *testing.T) {
	cfg := sim.GeneratorConfig{Seed: 7, NumRequests: 20, Algorithm: "sstf"}
	var a, b bytes.Buffer
	require.NoError(t, writeGeneratedScenario(&a, cfg))
	require.NoError(t, writeGeneratedScenario(&b, cfg))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteGeneratedScenario_ScanWithoutDirection_Rejected(t *testing.T) {
	var buf bytes.Buffer
	err := writeGeneratedScenario(&buf, sim.GeneratorConfig{Seed: 1, NumRequests: 3, Algorithm: "scan"})
	assert.ErrorIs(t, err, sim.ErrMissingSelection)
	assert.Empty(t, buf.String())
}
