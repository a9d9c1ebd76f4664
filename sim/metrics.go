// Reports a scheduling run: service order, per-seek movement and aggregates.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/disksched/sim/trace"
)

// Output formats accepted by SaveResults.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// ValidOutputFormats is the set of recognized output formats.
var ValidOutputFormats = map[string]bool{"": true, OutputTable: true, OutputJSON: true}

// Metrics is the reportable view of a ScheduleResult.
type Metrics struct {
	Algorithm     string             `json:"algorithm"`
	Head          int                `json:"head"`
	Sequence      []int              `json:"sequence"`
	TotalMovement int                `json:"total_movement"`
	Summary       *trace.SeekSummary `json:"summary"`
	Seeks         []trace.SeekRecord `json:"seeks"`
}

// NewMetrics builds Metrics from a result. label overrides the algorithm
// name when non-empty (e.g. "scan-left").
func NewMetrics(result ScheduleResult, label string) *Metrics {
	if label == "" {
		label = result.Algorithm
	}
	seq := make([]int, len(result.Sequence))
	for i, t := range result.Sequence {
		seq[i] = int(t)
	}
	seeks := result.Seeks
	if seeks == nil {
		seeks = []trace.SeekRecord{}
	}
	return &Metrics{
		Algorithm:     label,
		Head:          int(result.Head),
		Sequence:      seq,
		TotalMovement: result.TotalMovement,
		Summary:       trace.Summarize(result.Seeks),
		Seeks:         seeks,
	}
}

// Print renders the seek table and aggregates as text.
func (m *Metrics) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "=== %s Disk Scheduling ===\n", m.Algorithm)
	_, _ = fmt.Fprintf(w, "Initial Head   : %d\n", m.Head)
	_, _ = fmt.Fprintf(w, "Sequence       : %v\n", m.Sequence)
	_, _ = fmt.Fprintf(w, "Total Movement : %d\n", m.TotalMovement)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "From", "To", "Distance", "Kind"})
	for _, s := range m.Seeks {
		kind := "service"
		if s.Boundary {
			kind = "boundary"
		}
		table.Append([]string{
			strconv.Itoa(s.Step),
			strconv.Itoa(s.From),
			strconv.Itoa(s.To),
			strconv.Itoa(s.Distance),
			kind,
		})
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(m.TotalMovement), "total"})
	table.Render()

	if m.Summary != nil {
		_, _ = fmt.Fprintf(w, "Max Seek       : %d\n", m.Summary.MaxSeek)
		_, _ = fmt.Fprintf(w, "Mean Seek      : %.2f\n", m.Summary.MeanSeek)
		_, _ = fmt.Fprintf(w, "Reversals      : %d\n", m.Summary.DirectionChanges)
	}
}

// SaveResults writes the metrics in the given format ("table" or "json").
func (m *Metrics) SaveResults(w io.Writer, format string) error {
	switch format {
	case "", OutputTable:
		m.Print(w)
		return nil
	case OutputJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding metrics: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: table, json", format)
	}
}

// Comparison is one labelled entry of CompareAll.
type Comparison struct {
	Label  string
	Result ScheduleResult
}

// CompareAll runs every policy on the same input: FCFS, SSTF and SCAN in both
// directions. Results are returned in that fixed order.
func CompareAll(requests RequestSet, head Track, extent DiskExtent, opts ScanOptions) []Comparison {
	return []Comparison{
		{Label: "fcfs", Result: ScheduleFCFS(requests, head)},
		{Label: "sstf", Result: ScheduleSSTF(requests, head)},
		{Label: "scan-left", Result: ScheduleSCANWithOptions(requests, head, DirectionLeft, extent, opts)},
		{Label: "scan-right", Result: ScheduleSCANWithOptions(requests, head, DirectionRight, extent, opts)},
	}
}

// RankComparisons returns the comparisons ordered by total movement
// (ascending), keeping the CompareAll order among equals.
func RankComparisons(cs []Comparison) []Comparison {
	ranked := make([]Comparison, len(cs))
	copy(ranked, cs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.TotalMovement < ranked[j].Result.TotalMovement
	})
	return ranked
}

// PrintComparison renders a ranking table of the comparisons.
func PrintComparison(w io.Writer, cs []Comparison) {
	_, _ = fmt.Fprintln(w, "=== Policy Comparison ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Algorithm", "Total Movement", "Max Seek", "Reversals", "Sequence"})
	for i, c := range RankComparisons(cs) {
		summary := trace.Summarize(c.Result.Seeks)
		table.Append([]string{
			strconv.Itoa(i + 1),
			c.Label,
			strconv.Itoa(c.Result.TotalMovement),
			strconv.Itoa(summary.MaxSeek),
			strconv.Itoa(summary.DirectionChanges),
			c.Result.SequenceString(),
		})
	}
	table.Render()
}
