// Package engine owns the process-wide mutable state the hook entry
// points drive: the call-depth counter, the tracing-enabled flag, and
// the wiring between config, the filters, the resolver and the
// printer. Exactly one State is created per process, by Start, and
// reached only through the package-level Enter/Exit/Shutdown
// functions — the thread-unsafety this implies is intentional and
// documented, not hidden behind a mutex.
package engine

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/go-tracy/tracy/pkg/config"
	"github.com/go-tracy/tracy/pkg/filter"
	"github.com/go-tracy/tracy/pkg/printer"
	"github.com/go-tracy/tracy/pkg/resolver"
	"github.com/go-tracy/tracy/pkg/sink"
)

// State is the tracer's whole process-wide mutable footprint.
type State struct {
	cfg      *config.Config
	resolver *resolver.Resolver
	printer  *printer.Printer
	sink     sink.Sink

	// depth is modified only from the hook entry points, on whatever
	// thread the instrumented program happens to call them from.
	depth uint

	// enabled is the one piece of state a signal handler touches, so
	// it alone needs to be an atomic — everything else in State is
	// touched only from hook invocations on the instrumented thread.
	enabled atomic.Bool
}

var global *State

// ResolveConfig returns the process's resolved configuration without
// starting the engine — used by gotracyctl describe-config, which
// must read the *current* process's GOTRACY_* environment without
// installing hooks or a signal handler.
func ResolveConfig() *config.Config {
	return config.New()
}

// Start builds the engine's State and installs the signal handler (if
// GOTRACY_SIGNAL configures one). It is meant to be called exactly
// once, from gotracy_init.
func Start() (*State, error) {
	if global != nil {
		return nil, ErrAlreadyStarted
	}

	cfg := config.New()
	s := sink.Default()
	libFilter := filter.NewLibrary(cfg)
	funFilter := filter.NewFunction(cfg)
	res := resolver.New(libFilter, funFilter)
	pr := printer.New(cfg, res, s)

	st := &State{cfg: cfg, resolver: res, printer: pr, sink: s}

	if sig, ok := cfg.SignalTrigger(); ok {
		st.enabled.Store(false)
		st.installToggle(sig)
	} else {
		st.enabled.Store(true)
	}

	global = st
	return st, nil
}

func (st *State) installToggle(sig int) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.Signal(sig))
	go func() {
		for range ch {
			st.enabled.Store(!st.enabled.Load())
		}
	}()
}

// Enter is on_enter's Go-side body.
func Enter(addr uintptr) {
	if global == nil || !global.enabled.Load() {
		return
	}
	if global.printer.Print(addr, printer.Enter, global.depth) == printer.Admitted {
		global.depth++
	}
}

// Exit is on_exit's Go-side body. The decrement happens before
// Print is called, so an ENTER/LEAVE pair report the same bracketed
// depth — the parent frame's — matching the original's ordering.
func Exit(addr uintptr) {
	if global == nil || !global.enabled.Load() {
		return
	}
	global.depth--
	if global.printer.Print(addr, printer.Leave, global.depth) != printer.Admitted {
		global.depth++
	}
}

// Shutdown runs the async backlog resolution pass (§4.10), if async
// mode ever initialized a backlog. It is meant to be called exactly
// once, from a process-exit hook (gotracy_shutdown, a destructor
// attribute in cmd/libgotracy, or a deferred call in a Go-only
// embedding).
func Shutdown() {
	if global == nil {
		return
	}
	bl := global.printer.Backlog()
	if bl == nil {
		return
	}
	defer bl.Close()

	global.sink.Line("SYMTAB:")
	_ = bl.Each(func(addr uint64) error {
		res, suppressed := global.resolver.Resolve(uintptr(addr))
		if suppressed {
			return nil
		}
		global.sink.Line(formatBacklogLine(addr, res))
		return nil
	})
}
