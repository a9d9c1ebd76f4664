package sim

import (
	"fmt"
	"strings"

	"github.com/inference-sim/disksched/sim/trace"
)

// Track identifies a position on the disk surface.
type Track int

// RequestSet is the ordered list of pending track requests.
// Duplicates are legal and are serviced as separate steps.
// Schedulers never modify a RequestSet passed to them.
type RequestSet []Track

// Clone returns an independent copy of the set.
func (rs RequestSet) Clone() RequestSet {
	out := make(RequestSet, len(rs))
	copy(out, rs)
	return out
}

// DefaultDiskSize is the number of tracks used when no extent is given.
const DefaultDiskSize = 200

// DiskExtent is the addressable track range [0, Size-1].
// Only SCAN consults it, to locate the sweep boundary.
type DiskExtent struct {
	Size int
}

// DefaultDiskExtent returns the 200-track extent.
func DefaultDiskExtent() DiskExtent {
	return DiskExtent{Size: DefaultDiskSize}
}

// Resolved returns the extent with a zero size replaced by DefaultDiskSize.
func (e DiskExtent) Resolved() DiskExtent {
	if e.Size == 0 {
		return DefaultDiskExtent()
	}
	return e
}

// Max returns the highest addressable track.
func (e DiskExtent) Max() Track {
	return Track(e.Resolved().Size - 1)
}

// Contains reports whether t lies inside [0, Max()].
func (e DiskExtent) Contains(t Track) bool {
	return t >= 0 && t <= e.Max()
}

// Direction is the initial sweep direction for SCAN.
type Direction int

const (
	// DirectionLeft sweeps toward track 0 first.
	DirectionLeft Direction = iota
	// DirectionRight sweeps toward the highest track first.
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ScheduleResult is the outcome of one scheduling run.
type ScheduleResult struct {
	Algorithm     string
	Head          Track              // head position at the start of the run
	Sequence      []Track            // service order, a permutation of the requests
	TotalMovement int                // sum of all head displacements, boundary traversals included
	Seeks         []trace.SeekRecord // one record per head displacement
}

// SequenceString formats the service order as space-separated tracks.
func (r ScheduleResult) SequenceString() string {
	parts := make([]string, len(r.Sequence))
	for i, t := range r.Sequence {
		parts[i] = fmt.Sprint(int(t))
	}
	return strings.Join(parts, " ")
}

// Path returns the head position followed by every position the head visits,
// boundary stops included.
func (r ScheduleResult) Path() []Track {
	path := make([]Track, 0, len(r.Seeks)+1)
	path = append(path, r.Head)
	for _, s := range r.Seeks {
		path = append(path, Track(s.To))
	}
	return path
}
