// Package trace records what the analyzer is doing while it does it.
//
// Every pass opens a Span through Begin and closes it with End. The driver
// wraps the whole run in a ScopeDriver span, each file gets a ScopeFile
// span and each pass (lex, parse, names, types) a ScopePass span. Node level
// events are only emitted at LevelDebug.
//
// Tracers:
//
//   - Nop drops everything and is what FromContext returns by default
//   - StreamTracer writes each event as it happens (text or ndjson)
//   - RingTracer keeps the last N events for a dump after a crash
//   - MultiTracer fans out to several tracers
//
// From the CLI:
//
//	lilc analyze --trace=- --trace-level=pass prog.lil
package trace
