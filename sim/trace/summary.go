package trace

// SeekSummary aggregates statistics over the seeks of one run.
type SeekSummary struct {
	TotalSeeks       int     `json:"total_seeks"`
	ServicedSeeks    int     `json:"serviced_seeks"`
	BoundarySeeks    int     `json:"boundary_seeks"`
	TotalDistance    int     `json:"total_distance"`
	MaxSeek          int     `json:"max_seek"`
	MeanSeek         float64 `json:"mean_seek"` // mean distance per serviced request, boundary travel included
	DirectionChanges int     `json:"direction_changes"`
}

// Summarize computes aggregate statistics from a list of seeks.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(seeks []SeekRecord) *SeekSummary {
	summary := &SeekSummary{}
	lastDir := 0
	for _, s := range seeks {
		summary.TotalSeeks++
		if s.Boundary {
			summary.BoundarySeeks++
		} else {
			summary.ServicedSeeks++
		}
		summary.TotalDistance += s.Distance
		if s.Distance > summary.MaxSeek {
			summary.MaxSeek = s.Distance
		}
		// Zero-length seeks keep the previous heading.
		if dir := s.Direction(); dir != 0 {
			if lastDir != 0 && dir != lastDir {
				summary.DirectionChanges++
			}
			lastDir = dir
		}
	}
	if summary.ServicedSeeks > 0 {
		summary.MeanSeek = float64(summary.TotalDistance) / float64(summary.ServicedSeeks)
	}
	return summary
}
