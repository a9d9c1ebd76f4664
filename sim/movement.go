package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/disksched/sim/trace"
)

// movement accumulates head displacement for a single run.
// Each scheduler owns one; it is never shared across runs.
type movement struct {
	algorithm string
	start     Track
	head      Track
	total     int
	sequence  []Track
	seeks     []trace.SeekRecord
}

func newMovement(algorithm string, head Track, capacity int) *movement {
	return &movement{
		algorithm: algorithm,
		start:     head,
		head:      head,
		sequence:  make([]Track, 0, capacity),
		seeks:     make([]trace.SeekRecord, 0, capacity),
	}
}

// service moves the head to a requested track and records it in the sequence.
func (m *movement) service(t Track) {
	m.seek(t, false)
	m.sequence = append(m.sequence, t)
}

// traverse moves the head to a boundary without servicing anything there.
func (m *movement) traverse(t Track) {
	m.seek(t, true)
}

func (m *movement) seek(t Track, boundary bool) {
	d := distance(m.head, t)
	m.total = saturatingAdd(m.total, d)
	m.seeks = append(m.seeks, trace.SeekRecord{
		Step:     len(m.seeks) + 1,
		From:     int(m.head),
		To:       int(t),
		Distance: d,
		Boundary: boundary,
	})
	logrus.Debugf("[%s] seek %d -> %d (distance=%d, boundary=%v, total=%d)",
		m.algorithm, m.head, t, d, boundary, m.total)
	m.head = t
}

func (m *movement) result() ScheduleResult {
	return ScheduleResult{
		Algorithm:     m.algorithm,
		Head:          m.start,
		Sequence:      m.sequence,
		TotalMovement: m.total,
		Seeks:         m.seeks,
	}
}

// distance is |a-b|, saturating at math.MaxInt. The unsigned difference is
// exact for any pair of ints once a <= b.
func distance(a, b Track) int {
	if a > b {
		a, b = b, a
	}
	d := uint64(b) - uint64(a)
	if d > math.MaxInt {
		return math.MaxInt
	}
	return int(d)
}

// saturatingAdd adds two non-negative ints, clamping at math.MaxInt.
func saturatingAdd(total, d int) int {
	if total > math.MaxInt-d {
		return math.MaxInt
	}
	return total + d
}
