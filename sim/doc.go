// Package sim provides the disk-arm scheduling core for disksched.
//
// # Reading Guide
//
// Start with these files to understand the scheduling kernel:
//   - track.go: Track, RequestSet, DiskExtent, Direction and ScheduleResult
//   - movement.go: the shared head-movement accumulator every policy uses
//   - fcfs.go, sstf.go, scan.go: the three policies
//
// # Architecture
//
// Every policy is a pure function of (requests, head[, direction, extent]).
// None mutates its input or keeps state between calls, so concurrent calls
// on disjoint inputs need no locking. Schedulers never return errors: text
// parsing and selection checks (parse.go, scenario.go) happen at the caller
// boundary and report ErrMalformedInput, ErrMissingSelection or
// ErrOutOfRangeTrack.
//
// Sub-packages:
//   - sim/trace/: per-seek records and their summary (no dependency on sim)
//
// # Key Interfaces
//
//   - DiskScheduler: order a request set from a head position; built by name
//     with NewScheduler ("fcfs", "sstf", "scan")
//
// Reporting lives in metrics.go (tables and JSON) and chart.go (text step chart).
package sim
