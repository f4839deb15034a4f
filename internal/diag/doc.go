// Package diag defines the diagnostic model shared by the lexer, the parser and
// both semantic passes.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: compact numeric identifier (codes.go) with a stable "SEM3001" form.
//   - Subject: the offending name or token text, when there is one.
//   - Message: short human text.
//   - Primary: the source.Span the finding points at.
//   - Notes: secondary spans ("previous declaration here").
//
// # Emitting diagnostics
//
// Producers never own storage. They receive a Reporter and either call
// Report directly or go through ReportBuilder:
//
//	diag.ReportError(r, diag.SemaUndeclared, span, "undeclared identifier").
//		WithSubject(name).
//		Emit()
//
// BagReporter collects into a Bag; CountingReporter lets a pass tell whether it
// emitted anything without inspecting the sink.
//
// Rendering lives in internal/diagfmt. This package does no IO.
package diag
