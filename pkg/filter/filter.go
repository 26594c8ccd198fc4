// Package filter combines the word-list and extended-glob matchers
// with the tri-state include/exclude policy shared by the library and
// function filters: report everything, whitelist, or blacklist, with
// include always taking precedence over exclude.
package filter

import (
	"github.com/go-tracy/tracy/pkg/config"
	"github.com/go-tracy/tracy/pkg/eglob"
	"github.com/go-tracy/tracy/pkg/wordlist"
)

// Library decides, for each resolved DSO path, whether calls defined
// in it are reported.
type Library struct {
	cfg *config.Config
}

func NewLibrary(cfg *config.Config) *Library {
	return &Library{cfg: cfg}
}

// Check returns the basename of path to use in the trace output, and
// whether the call should be reported at all.
func (f *Library) Check(path string) (basename string, report bool) {
	list, isWhitelist, reportAll := f.cfg.LibraryFilter()
	if reportAll {
		return wordlist.Basename(path), true
	}

	base, matched := wordlist.Match(list, path)
	if !matched {
		return wordlist.Basename(path), !isWhitelist
	}
	return base, isWhitelist
}

// Function decides, for a resolved (or unresolved) function name,
// whether the call should be reported.
type Function struct {
	cfg *config.Config
}

func NewFunction(cfg *config.Config) *Function {
	return &Function{cfg: cfg}
}

// Check reports whether a call to name should be reported. haveName
// is false when address resolution found a DSO but no symbol; a
// whitelist suppresses that case, a blacklist or report-all reports
// it, matching the original's null-funame rule.
func (f *Function) Check(name string, haveName bool) bool {
	pattern, isWhitelist, reportAll := f.cfg.FunctionFilter()
	if reportAll {
		return true
	}
	if !haveName {
		return !isWhitelist
	}

	matched := eglob.Match(pattern, name)
	if isWhitelist {
		return matched
	}
	return !matched
}
