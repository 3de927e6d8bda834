// Package tracemem records labeled snapshots of the current process memory
// footprint and renders them as a human-readable report.
//
// The package keeps a single process-wide sample log. Point appends to it,
// Memory reads the current footprint without logging, Trace wraps a function
// with a before/after sample pair, and Print renders the log:
//
//	tracemem.Point("after setup")
//	...
//	tracemem.Print()
//
// The log itself is reachable through Logs for indexing, slicing, iteration,
// filtering and mapping, but it only grows through Point: direct appends and
// item assignment fail with typed errors.
package tracemem
