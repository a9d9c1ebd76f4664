package sim

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// DefaultChartHeight is the number of track rows drawn by RenderStepChart.
const DefaultChartHeight = 10

const chartColumnWidth = 4

// RenderStepChart draws the head path as a text chart: x is the step index,
// y is the track number, and each visited position is marked with '*'.
// The y axis spans the extent, widened if the path leaves it.
func RenderStepChart(w io.Writer, title string, path []Track, extent DiskExtent, height int) {
	if height < 2 {
		height = DefaultChartHeight
	}
	lo, hi := Track(0), extent.Max()
	for _, t := range path {
		lo = min(lo, t)
		hi = max(hi, t)
	}
	// Row math runs in float64 so extreme tracks cannot overflow.
	span := float64(hi) - float64(lo)
	rowOf := func(t Track) int {
		if span == 0 {
			return 0
		}
		r := int(math.Round((float64(t) - float64(lo)) * float64(height-1) / span))
		return min(max(r, 0), height-1)
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", len(path)*chartColumnWidth))
	}
	for step, t := range path {
		grid[rowOf(t)][step*chartColumnWidth+chartColumnWidth/2] = '*'
	}

	_, _ = fmt.Fprintf(w, "%s (track vs step)\n", title)
	for r := height - 1; r >= 0; r-- {
		label := int64(math.Floor(float64(lo) + float64(r)*span/float64(height-1)))
		switch r {
		case 0:
			label = int64(lo)
		case height - 1:
			label = int64(hi)
		}
		_, _ = fmt.Fprintf(w, "%5d |%s\n", label, strings.TrimRight(string(grid[r]), " "))
	}
	_, _ = fmt.Fprintf(w, "      +%s\n", strings.Repeat("-", len(path)*chartColumnWidth))
	var axis strings.Builder
	for step := range path {
		fmt.Fprintf(&axis, "%*d", chartColumnWidth/2+1, step)
		axis.WriteString(strings.Repeat(" ", chartColumnWidth-(chartColumnWidth/2+1)))
	}
	_, _ = fmt.Fprintf(w, "       %s\n", strings.TrimRight(axis.String(), " "))
}
