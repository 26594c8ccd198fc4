// Package sink abstracts the two destinations a trace line or a
// configuration diagnostic can be written to, per SPEC_FULL.md §6:
// plain standard error, or a structured logging facility selected at
// build time with the gotracy_zerolog build tag.
package sink

// Sink is the minimal surface the call printer, the async resolver
// and the config reader need: one already-formatted line for a trace
// event, and one for a degraded-but-not-fatal diagnostic.
type Sink interface {
	// Line writes one already-formatted trace or SYMTAB line.
	Line(s string)

	// Diagnostic writes one degraded-mode notice: malformed
	// configuration, an unreadable DSO, and the like. It must never
	// block on anything that could recurse into tracing.
	Diagnostic(format string, args ...any)
}

// std is the process-wide sink every package here defaults to. Its
// initial value is installed by an init() in stderr.go or zerolog.go,
// whichever the build tag selects. engine.Start may call SetDefault
// to override it explicitly.
var std Sink

// Default returns the process-wide sink.
func Default() Sink { return std }

// SetDefault installs s as the process-wide sink. It is meant to be
// called once, from an init() or a constructor, consistent with the
// "sink chosen at build time" contract; calling it mid-trace is safe
// but produces a visible seam in the output.
func SetDefault(s Sink) { std = s }
