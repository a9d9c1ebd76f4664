package sim

import (
	"fmt"
	"sort"
)

// BoundaryMode controls when SCAN charges the traversal to the disk edge.
type BoundaryMode string

const (
	// BoundaryAlways charges the move to the edge whenever the first sweep
	// serviced at least one request, even if nothing is left behind the head.
	BoundaryAlways BoundaryMode = "always"
	// BoundaryOnReverse charges the move to the edge only when requests remain
	// on the other side, i.e. when the arm has to turn around.
	BoundaryOnReverse BoundaryMode = "on-reverse"
)

// validBoundaryModes maps accepted boundary mode strings.
var validBoundaryModes = map[BoundaryMode]bool{
	BoundaryAlways:    true,
	BoundaryOnReverse: true,
	"":                true, // empty defaults to always
}

// IsValidBoundaryMode returns true if the given string is a recognized boundary mode.
func IsValidBoundaryMode(mode string) bool {
	return validBoundaryModes[BoundaryMode(mode)]
}

// ScanOptions tunes SCAN accounting. The zero value is BoundaryAlways.
type ScanOptions struct {
	Boundary BoundaryMode
}

// ScheduleSCAN runs SCAN with the default boundary accounting (BoundaryAlways).
func ScheduleSCAN(requests RequestSet, head Track, dir Direction, extent DiskExtent) ScheduleResult {
	return ScheduleSCANWithOptions(requests, head, dir, extent, ScanOptions{})
}

// ScheduleSCANWithOptions sweeps from the head toward one edge of the disk,
// servicing requests on the way, then reverses and services the rest.
//
// Requests below the head form the left side; requests at or above it form
// the right side, so a request equal to the head is always serviced during
// the rightward leg. Values outside the extent are not rejected: partitioning
// and accounting only compare and subtract.
func ScheduleSCANWithOptions(requests RequestSet, head Track, dir Direction, extent DiskExtent, opts ScanOptions) ScheduleResult {
	if !validBoundaryModes[opts.Boundary] {
		panic(fmt.Sprintf("unknown boundary mode %q", opts.Boundary))
	}
	var left, right []Track
	for _, r := range requests {
		if r < head {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	sort.Slice(left, func(i, j int) bool { return left[i] < left[j] })
	sort.Slice(right, func(i, j int) bool { return right[i] < right[j] })

	m := newMovement("scan", head, len(requests)+1)
	sweepDown := func() {
		for i := len(left) - 1; i >= 0; i-- {
			m.service(left[i])
		}
	}
	sweepUp := func() {
		for _, r := range right {
			m.service(r)
		}
	}

	switch dir {
	case DirectionLeft:
		sweepDown()
		if chargeBoundary(opts.Boundary, left, right) {
			m.traverse(0)
		}
		sweepUp()
	case DirectionRight:
		sweepUp()
		if chargeBoundary(opts.Boundary, right, left) {
			m.traverse(extent.Max())
		}
		sweepDown()
	default:
		panic(fmt.Sprintf("unknown direction %v", dir))
	}
	return m.result()
}

// chargeBoundary reports whether the arm travels to the edge after sweeping
// the swept side, given what remains on the far side.
func chargeBoundary(mode BoundaryMode, swept, far []Track) bool {
	if len(swept) == 0 {
		return false
	}
	if mode == BoundaryOnReverse {
		return len(far) > 0
	}
	return true
}
