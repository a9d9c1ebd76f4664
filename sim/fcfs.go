package sim

// ScheduleFCFS services requests in the order given, with no lookahead.
func ScheduleFCFS(requests RequestSet, head Track) ScheduleResult {
	m := newMovement("fcfs", head, len(requests))
	for _, r := range requests {
		m.service(r)
	}
	return m.result()
}
