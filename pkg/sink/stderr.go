//go:build !gotracy_zerolog

package sink

import (
	"fmt"
	"os"
)

// stderrSink is the default facility: fprintf-to-stderr with a
// trailing newline, matching the original's non-GLib LOGIT() branch.
type stderrSink struct{}

func (stderrSink) Line(s string) {
	fmt.Fprintln(os.Stderr, s)
}

func (stderrSink) Diagnostic(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func init() {
	std = stderrSink{}
}
