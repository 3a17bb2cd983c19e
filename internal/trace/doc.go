// Package trace records what the front end is doing: driver calls, the lex
// and parse passes of every file, and (at debug level) individual parse
// roots.
//
// Tracers are cheap when disabled: Begin on a nop tracer returns a span whose
// End does nothing.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "parse")
//	defer span.End("")
//
// Implementations:
//
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for dumps after an internal error
//   - LogTracer: forwards events to commonlog
//   - MultiTracer: fan-out
package trace
