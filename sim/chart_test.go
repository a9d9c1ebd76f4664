package sim

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestRenderStepChart_OneMarkerPerStep(t *testing.T) {
	// GIVEN the head followed by the FCFS sequence
	result := ScheduleFCFS(textbook, 53)
	path := result.Path()

	// WHEN rendered
	var buf bytes.Buffer
	RenderStepChart(&buf, "FCFS", path, DefaultDiskExtent(), 10)

	// THEN every position is plotted once
	out := buf.String()
	if got := strings.Count(out, "*"); got != len(path) {
		t.Errorf("expected %d markers, got %d\n%s", len(path), got, out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title + 10 rows + axis + step labels
	if len(lines) != 13 {
		t.Errorf("expected 13 lines, got %d\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "FCFS") {
		t.Errorf("missing title: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  199 |") {
		t.Errorf("top row should be labelled 199: %q", lines[1])
	}
	if !strings.HasPrefix(lines[10], "    0 |") {
		t.Errorf("bottom row should be labelled 0: %q", lines[10])
	}
}

func TestRenderStepChart_ExtremesOnEdgeRows(t *testing.T) {
	var buf bytes.Buffer
	RenderStepChart(&buf, "edges", tracks(0, 199), DefaultDiskExtent(), 5)

	lines := strings.Split(buf.String(), "\n")
	// lines[1] is the top row, lines[5] the bottom row
	if !strings.Contains(lines[1], "*") || !strings.Contains(lines[5], "*") {
		t.Errorf("extremes should sit on the edge rows:\n%s", buf.String())
	}
	// the first step (track 0) is in the first column, bottom row
	if strings.Index(lines[5], "*") >= strings.Index(lines[1], "*") {
		t.Errorf("track 0 should be plotted before track 199:\n%s", buf.String())
	}
}

func TestRenderStepChart_EmptyPathAndSmallHeight(t *testing.T) {
	var buf bytes.Buffer
	RenderStepChart(&buf, "empty", nil, DefaultDiskExtent(), 0)
	if strings.Count(buf.String(), "*") != 0 {
		t.Error("empty path should draw no markers")
	}
	// height below 2 falls back to the default
	if got := strings.Count(buf.String(), "|"); got != DefaultChartHeight {
		t.Errorf("expected %d rows, got %d", DefaultChartHeight, got)
	}
}

func TestScheduleResult_PathIncludesBoundary(t *testing.T) {
	r := ScheduleSCAN(RequestSet{20, 60}, 50, DirectionLeft, DefaultDiskExtent())
	got := trackInts(r.Path())
	want := []int{50, 20, 0, 60}
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}
	if r.SequenceString() != "20 60" {
		t.Errorf("SequenceString() = %q", r.SequenceString())
	}
}

func TestRenderStepChart_ExtremeTracks_NoPanic(t *testing.T) {
	paths := [][]Track{
		tracks(0, math.MaxInt, -5),
		tracks(0, math.MinInt+1, 10),
	}
	for _, path := range paths {
		var buf bytes.Buffer
		RenderStepChart(&buf, "extreme", path, DefaultDiskExtent(), 10)
		if got := strings.Count(buf.String(), "*"); got != len(path) {
			t.Errorf("path %v: expected %d markers, got %d\n%s", path, len(path), got, buf.String())
		}
	}
}
