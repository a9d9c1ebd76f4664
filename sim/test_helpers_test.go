package sim

// textbook is the classic eight-request workload used throughout the tests.
var textbook = RequestSet{98, 183, 37, 122, 14, 124, 65, 67}

func tracks(vals ...int) []Track {
	out := make([]Track, len(vals))
	for i, v := range vals {
		out[i] = Track(v)
	}
	return out
}

func trackInts(ts []Track) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = int(t)
	}
	return out
}

// seekTotal sums recorded seek distances.
func seekTotal(r ScheduleResult) int {
	total := 0
	for _, s := range r.Seeks {
		total += s.Distance
	}
	return total
}

// allPolicies runs every policy and direction on the same input.
func allPolicies(requests RequestSet, head Track) map[string]ScheduleResult {
	extent := DefaultDiskExtent()
	return map[string]ScheduleResult{
		"fcfs":                  ScheduleFCFS(requests, head),
		"sstf":                  ScheduleSSTF(requests, head),
		"scan-left":             ScheduleSCAN(requests, head, DirectionLeft, extent),
		"scan-right":            ScheduleSCAN(requests, head, DirectionRight, extent),
		"scan-left-on-reverse":  ScheduleSCANWithOptions(requests, head, DirectionLeft, extent, ScanOptions{Boundary: BoundaryOnReverse}),
		"scan-right-on-reverse": ScheduleSCANWithOptions(requests, head, DirectionRight, extent, ScanOptions{Boundary: BoundaryOnReverse}),
	}
}
