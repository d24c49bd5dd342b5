// Package trace records what the pronouner driver is doing.
//
// Tracing is off unless asked for:
//
//	pronouner build --trace=- --trace-level=detail
//
// Tracers:
//
//   - Nop: nothing is recorded
//   - StreamTracer: every event is written as it happens (text or ndjson)
//   - RingTracer: the last N events stay in memory and are dumped on failure
//   - MultiTracer: fan-out to several tracers
//
// Levels and the scopes they admit:
//
//   - off: nothing
//   - error: only error events
//   - phase: driver commands and passes (load, compile, write)
//   - detail: plus one span per dialog file
//   - debug: everything
//
// The tracer travels in a context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "load", 0)
//	defer span.End("")
//
// The compiler core never traces; only the driver and the CLI do.
package trace
