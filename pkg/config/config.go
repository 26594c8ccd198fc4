// Package config resolves the tracer's process-wide configuration
// from the environment, one variable at a time, on first demand. Each
// accessor caches its own result in a onceValue field, matching the
// original's "static int fooonce = -1" per-function statics: reading
// GOTRACY_ASYNC never forces GOTRACY_MAXDEPTH to be parsed too.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-tracy/tracy/internal/settings"
	"github.com/go-tracy/tracy/pkg/sink"
	"github.com/go-tracy/tracy/pkg/wordlist"
)

func env(name string) (string, bool) {
	return os.LookupEnv(settings.EnvPrefix + "_" + name)
}

// Config is the process-wide snapshot; every accessor's result is
// stable for the life of the process once computed. The caching is not
// synchronized, so accessors are not safe to call concurrently before
// their first read has completed.
type Config struct {
	signal onceValue[int]
	libs   onceValue[libFilterSpec]
	funs   onceValue[funFilterSpec]
	depth  onceValue[int]
	async  onceValue[bool]
	entOn  onceValue[bool]
	time   onceValue[bool]
	tid    onceValue[bool]
	fname  onceValue[bool]
	indent onceValue[int]
}

func New() *Config {
	return &Config{}
}

// onceValue lazily computes and caches a typed config value.
type onceValue[T any] struct {
	done bool
	val  T
}

func (o *onceValue[T]) get(compute func() T) T {
	if !o.done {
		o.val = compute()
		o.done = true
	}
	return o.val
}

// SignalTrigger returns the signal number tracing should be toggled
// by and whether one is configured at all. GOTRACY_SIGNAL starting
// with 'y'/'Y' means SIGPROF (signal 27 on Linux/amd64); otherwise it
// is parsed as a positive integer signal number.
func (c *Config) SignalTrigger() (int, bool) {
	sig := c.signal.get(func() int {
		raw, ok := env("SIGNAL")
		if !ok {
			return 0
		}
		if raw != "" && (raw[0] == 'y' || raw[0] == 'Y') {
			return sigprof
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			sink.Default().Diagnostic("%s: couldn't understand %s=%q", ErrSignalNotUnderstood, settings.EnvPrefix+"_SIGNAL", raw)
			return 0
		}
		return n
	})
	return sig, sig > 0
}

// sigprof is syscall.SIGPROF's value, inlined to avoid pulling in
// package syscall for a single constant used only here.
const sigprof = 27

type libFilterSpec struct {
	list        *wordlist.List
	isWhitelist bool
	reportAll   bool
}

// LibraryFilter returns the resolved library include/exclude list and
// whether it is a whitelist; reportAll is true when neither
// GOTRACY_INLIBS nor GOTRACY_EXLIBS is set.
func (c *Config) LibraryFilter() (list *wordlist.List, isWhitelist bool, reportAll bool) {
	spec := c.libs.get(func() libFilterSpec {
		in, haveIn := env("INLIBS")
		ex, haveEx := env("EXLIBS")
		if haveIn && in != "" && haveEx && ex != "" {
			sink.Default().Diagnostic("%s: both %s_INLIBS and %s_EXLIBS set, using include",
				ErrBothFilterListsIgnored, settings.EnvPrefix, settings.EnvPrefix)
		}
		if haveIn && in != "" {
			return libFilterSpec{list: wordlist.Build(in), isWhitelist: true}
		}
		if haveEx && ex != "" {
			return libFilterSpec{list: wordlist.Build(ex), isWhitelist: false}
		}
		return libFilterSpec{reportAll: true}
	})
	return spec.list, spec.isWhitelist, spec.reportAll
}

type funFilterSpec struct {
	pattern     string
	isWhitelist bool
	reportAll   bool
}

// FunctionFilter returns the resolved extended-glob pattern and
// whether it is a whitelist; reportAll is true when neither
// GOTRACY_INFUNS nor GOTRACY_EXFUNS is set.
func (c *Config) FunctionFilter() (pattern string, isWhitelist bool, reportAll bool) {
	spec := c.funs.get(func() funFilterSpec {
		in, haveIn := env("INFUNS")
		ex, haveEx := env("EXFUNS")
		if haveIn && in != "" && haveEx && ex != "" {
			sink.Default().Diagnostic("%s: both %s_INFUNS and %s_EXFUNS set, using include",
				ErrBothFilterListsIgnored, settings.EnvPrefix, settings.EnvPrefix)
		}
		if haveIn && in != "" {
			return funFilterSpec{pattern: in, isWhitelist: true}
		}
		if haveEx && ex != "" {
			return funFilterSpec{pattern: ex, isWhitelist: false}
		}
		return funFilterSpec{reportAll: true}
	})
	return spec.pattern, spec.isWhitelist, spec.reportAll
}

// MaxDepth returns the configured depth limit and whether one is set
// at all. GOTRACY_MAXDEPTH uses permissive integer parsing: anything
// that doesn't parse behaves as unlimited, matching atoi's silent
// zero-on-failure the original relies on, rather than erroring.
func (c *Config) MaxDepth() (int, bool) {
	depth := c.depth.get(func() int {
		raw, ok := env("MAXDEPTH")
		if !ok || raw == "" {
			return -1
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return -1
		}
		return n
	})
	return depth, depth >= 0
}

// Async reports whether deferred symbol resolution is enabled.
func (c *Config) Async() bool {
	return c.async.get(func() bool {
		v, _ := env("ASYNC")
		return v == "1"
	})
}

// EntriesOnly reports whether LEAVE events are suppressed entirely.
func (c *Config) EntriesOnly() bool {
	return c.entOn.get(func() bool {
		v, _ := env("LOG_ENTRIES_ONLY")
		return v == "1"
	})
}

// LogTime reports whether a SEC.USEC prefix is emitted.
func (c *Config) LogTime() bool {
	return c.time.get(func() bool {
		v, _ := env("LOG_TIME")
		return v == "1"
	})
}

// LogTID reports whether a TID prefix is emitted.
func (c *Config) LogTID() bool {
	return c.tid.get(func() bool {
		v, _ := env("LOG_TID")
		return v == "1"
	})
}

// LogFname reports whether the defining object's basename is printed
// ahead of the function name. Defaults to true when unset.
func (c *Config) LogFname() bool {
	return c.fname.get(func() bool {
		v, ok := env("LOG_FNAME")
		if !ok {
			return true
		}
		return len(v) > 0 && v[0] == '1'
	})
}

// Indent returns the number of spaces added per depth level.
func (c *Config) Indent() int {
	return c.indent.get(func() int {
		v, ok := env("LOG_INDENT")
		if !ok {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	})
}
