package sim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleScenarios(t *testing.T) {
	tests := []struct {
		file      string
		algorithm string
		sequence  []Track
		total     int
	}{
		{"textbook-scan-left.yaml", "scan", tracks(37, 14, 65, 67, 98, 122, 124, 183), 236},
		{"textbook-sstf.yaml", "sstf", tracks(65, 67, 37, 14, 98, 122, 124, 183), 236},
		{"scan-stop-at-last.yaml", "scan", tracks(10, 20), 20},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			// GIVEN an example scenario shipped in examples/
			sc, err := LoadScenario(filepath.Join("..", "examples", tt.file))
			require.NoError(t, err, "failed to load %s", tt.file)

			// THEN it validates
			require.NoError(t, sc.Validate())
			assert.Equal(t, tt.algorithm, sc.Algorithm)

			// AND runs to the documented result
			result, err := sc.Run()
			require.NoError(t, err)
			assert.Equal(t, tt.sequence, result.Sequence)
			assert.Equal(t, tt.total, result.TotalMovement)
		})
	}
}
