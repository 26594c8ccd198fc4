package printer_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tracy/tracy/pkg/config"
	"github.com/go-tracy/tracy/pkg/filter"
	"github.com/go-tracy/tracy/pkg/printer"
	"github.com/go-tracy/tracy/pkg/resolver"
)

type fakeSink struct {
	lines       []string
	diagnostics []string
}

func (f *fakeSink) Line(s string)                      { f.lines = append(f.lines, s) }
func (f *fakeSink) Diagnostic(format string, a ...any) { f.diagnostics = append(f.diagnostics, format) }

func newPrinter(t *testing.T) (*printer.Printer, *fakeSink) {
	t.Helper()
	cfg := config.New()
	res := resolver.New(filter.NewLibrary(cfg), filter.NewFunction(cfg))
	s := &fakeSink{}
	return printer.New(cfg, res, s), s
}

// selfPC returns a real, mapped program counter inside the test
// binary, standing in for the address the instrumentation hook would
// pass on a genuine call site.
func selfPC(t *testing.T) uintptr {
	t.Helper()
	pc, _, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return uintptr(pc)
}

func TestDepthLimitAdmitsWithoutEmitting(t *testing.T) {
	t.Setenv("GOTRACY_MAXDEPTH", "2")
	p, s := newPrinter(t)

	outcome := p.Print(selfPC(t), printer.Enter, 2)
	require.Equal(t, printer.Admitted, outcome)
	require.Empty(t, s.lines)
}

func TestUnmappedAddressIsSuppressed(t *testing.T) {
	p, s := newPrinter(t)

	outcome := p.Print(1, printer.Enter, 0)
	require.Equal(t, printer.Suppressed, outcome)
	require.Empty(t, s.lines)
}

func TestLibraryBlacklistSuppressesOwnBinary(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)
	t.Setenv("GOTRACY_EXLIBS", filepath.Base(self))

	p, s := newPrinter(t)
	outcome := p.Print(selfPC(t), printer.Enter, 0)
	require.Equal(t, printer.Suppressed, outcome)
	require.Empty(t, s.lines)
}

func TestAsyncModeEmitsOneLineAndRecordsIt(t *testing.T) {
	t.Setenv("GOTRACY_ASYNC", "1")
	p, s := newPrinter(t)

	outcome := p.Print(selfPC(t), printer.Enter, 0)
	require.Equal(t, printer.Admitted, outcome)
	require.Len(t, s.lines, 1)
	require.Contains(t, s.lines[0], "ENTER[0]")
	require.NotNil(t, p.Backlog())
}

func TestEntriesOnlySuppressesAsyncLeaveLine(t *testing.T) {
	t.Setenv("GOTRACY_ASYNC", "1")
	t.Setenv("GOTRACY_LOG_ENTRIES_ONLY", "1")
	p, s := newPrinter(t)

	addr := selfPC(t)
	p.Print(addr, printer.Enter, 0)
	require.Len(t, s.lines, 1)

	p.Print(addr, printer.Leave, 0)
	require.Len(t, s.lines, 1)
}
