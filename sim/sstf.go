package sim

import "sort"

// ScheduleSSTF repeatedly services the pending request closest to the head.
// When two pending requests are equally close, the smaller track wins.
//
// The requests are sorted once into a private copy. Serviced entries always
// form a contiguous run of that copy with the head at one end, so the nearest
// pending request is one of the two entries bordering the run.
func ScheduleSSTF(requests RequestSet, head Track) ScheduleResult {
	m := newMovement("sstf", head, len(requests))
	sorted := requests.Clone()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// lo is the nearest pending entry below the run, hi the nearest above.
	hi := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= head })
	lo := hi - 1
	for lo >= 0 || hi < len(sorted) {
		pickLow := false
		switch {
		case lo < 0:
		case hi >= len(sorted):
			pickLow = true
		default:
			// <= sends ties to the lower track.
			pickLow = distance(m.head, sorted[lo]) <= distance(m.head, sorted[hi])
		}
		if pickLow {
			m.service(sorted[lo])
			lo--
		} else {
			m.service(sorted[hi])
			hi++
		}
	}
	return m.result()
}
