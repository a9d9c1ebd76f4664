// Package trace provides seek-level recording of a disk scheduling run.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// SeekRecord captures a single head displacement.
type SeekRecord struct {
	Step     int  `json:"step"` // 1-based position in the run
	From     int  `json:"from"`
	To       int  `json:"to"`
	Distance int  `json:"distance"`
	Boundary bool `json:"boundary"` // true for a SCAN edge traversal, which services no request
}

// Direction returns -1 for a move toward lower tracks, +1 toward higher
// tracks and 0 for a zero-length seek.
func (r SeekRecord) Direction() int {
	switch {
	case r.To < r.From:
		return -1
	case r.To > r.From:
		return 1
	default:
		return 0
	}
}
