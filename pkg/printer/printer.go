// Package printer formats a single enter or exit event and writes it
// to the configured sink, or — in async mode — defers the name
// resolution and logs the raw address to the backlog instead.
package printer

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/go-tracy/tracy/pkg/backlog"
	"github.com/go-tracy/tracy/pkg/config"
	"github.com/go-tracy/tracy/pkg/resolver"
	"github.com/go-tracy/tracy/pkg/sink"
)

// Direction is which half of a call this event represents.
type Direction string

const (
	Enter Direction = "ENTER"
	Leave Direction = "LEAVE"
)

// Outcome tells the caller (the hook entry points, §4.8) whether to
// adjust the depth counter.
type Outcome int

const (
	// Admitted means the event was handled — emitted, or silently
	// dropped only because of a depth limit or entries-only — and
	// counts toward depth bookkeeping.
	Admitted Outcome = iota
	// Suppressed means the library/function filter rejected the call,
	// or no mapping covers its address; either way it must not affect
	// the depth counter.
	Suppressed
)

// Printer is process-wide, constructed once by the engine at startup.
type Printer struct {
	cfg      *config.Config
	resolver *resolver.Resolver
	sink     sink.Sink

	asyncOnce sync.Once
	backlog   *backlog.Backlog
}

func New(cfg *config.Config, res *resolver.Resolver, s sink.Sink) *Printer {
	return &Printer{cfg: cfg, resolver: res, sink: s}
}

// Backlog returns the async scratch file, if async mode ever
// successfully initialized one. Engine uses this at process exit to
// run the deferred resolution pass.
func (p *Printer) Backlog() *backlog.Backlog {
	return p.backlog
}

// Print formats and (usually) emits one event for a call at depth,
// whose address is addr.
func (p *Printer) Print(addr uintptr, dir Direction, depth uint) Outcome {
	if maxDepth, limited := p.cfg.MaxDepth(); limited && depth >= uint(maxDepth) {
		return Admitted
	}

	addr, ok := callerAddress(addr)
	if !ok {
		return Suppressed
	}

	isEntry := dir == Enter
	entriesOnly := p.cfg.EntriesOnly()
	effectiveDir := dir
	if entriesOnly {
		effectiveDir = ""
	}

	if p.cfg.Async() {
		p.asyncOnce.Do(func() {
			bl, err := backlog.Open()
			if err != nil {
				p.sink.Diagnostic("async mode disabled: %s", err)
				return
			}
			p.backlog = bl
		})
	}

	if p.backlog != nil {
		if !entriesOnly || isEntry {
			p.sink.Line(p.prefix() + fmt.Sprintf("%s[%d]%s[0x%x]",
				effectiveDir, depth, p.pad(depth), addr))
		}
		if isEntry {
			if err := p.backlog.Record(uint64(addr)); err != nil {
				p.sink.Diagnostic("writing backlog record: %s", err)
			}
		}
		return Admitted
	}

	res, suppressed := p.resolver.Resolve(addr)
	if suppressed {
		return Suppressed
	}
	if entriesOnly && !isEntry {
		return Admitted
	}

	var fnamePart string
	if p.cfg.LogFname() {
		fnamePart = res.DSOBase + ":"
	}

	var tail string
	if res.HaveFunc {
		tail = res.FuncName + "()"
	} else {
		tail = fmt.Sprintf("[0x%x]", addr)
	}

	p.sink.Line(p.prefix() + fmt.Sprintf("%s[%d]%s%s%s",
		effectiveDir, depth, p.pad(depth), fnamePart, tail))
	return Admitted
}

func (p *Printer) pad(depth uint) string {
	return strings.Repeat(" ", 1+p.cfg.Indent()*int(depth))
}

func nowSecUsec() (int64, int64) {
	now := time.Now()
	return now.Unix(), int64(now.Nanosecond() / 1000)
}

// prefix composes the empty / "SEC.USEC " / "TID " / "SEC.USEC[TID] "
// header, mirroring procinfo() in the original: each half read and
// cached independently by Config, combined fresh on every call since
// the clock and thread id are only meaningful per-event.
func (p *Printer) prefix() string {
	needTime, needTID := p.cfg.LogTime(), p.cfg.LogTID()
	switch {
	case !needTime && !needTID:
		return ""
	case needTime && !needTID:
		sec, usec := nowSecUsec()
		return fmt.Sprintf("%d.%06d ", sec, usec)
	case !needTime && needTID:
		return fmt.Sprintf("%d ", unix.Gettid())
	default:
		sec, usec := nowSecUsec()
		return fmt.Sprintf("%d.%06d[%d] ", sec, usec, unix.Gettid())
	}
}
