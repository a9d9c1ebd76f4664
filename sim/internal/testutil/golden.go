// Package testutil provides shared test infrastructure for the disksched core.
// It holds the golden dataset types and assertion helpers used by the sim
// package tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single hand-verified scheduling case.
type GoldenTestCase struct {
	Name      string         `json:"name"`
	Algorithm string         `json:"algorithm"`
	Direction string         `json:"direction"`
	Boundary  string         `json:"boundary"`
	DiskSize  int            `json:"disk_size"`
	Head      int            `json:"head"`
	Requests  []int          `json:"requests"`
	Expected  GoldenExpected `json:"expected"`
}

// GoldenExpected is the exact outcome of a golden test case.
type GoldenExpected struct {
	Sequence      []int `json:"sequence"`
	TotalMovement int   `json:"total_movement"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}

	return &dataset
}

// AssertPermutation fails the test unless got holds exactly the elements of
// want with the same multiplicities, in any order.
func AssertPermutation(t *testing.T, name string, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: length %d, want %d (got %v, want permutation of %v)", name, len(got), len(want), got, want)
		return
	}
	counts := make(map[int]int, len(want))
	for _, v := range want {
		counts[v]++
	}
	for _, v := range got {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("%s: track %d multiplicity off by %d (got %v, want permutation of %v)", name, v, -c, got, want)
		}
	}
}
