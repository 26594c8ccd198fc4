// Package resolver turns a raw instruction-pointer value into the
// shared object and function name that defined it, combining procmap
// (the dladdr stand-in for "which object, loaded where") with
// elfimage's cached symbol tables (the "nearest preceding symbol"
// half dladdr would otherwise have done for us).
//
// It deliberately holds its DSO cache as a plain, unsynchronized map:
// per SPEC_FULL.md, the engine mutates process-wide state without
// locking throughout, and this is no exception.
package resolver

import (
	"github.com/go-tracy/tracy/pkg/elfimage"
	"github.com/go-tracy/tracy/pkg/filter"
	"github.com/go-tracy/tracy/pkg/procmap"
)

// Resolution is the outcome of a successful (non-suppressed) Resolve.
type Resolution struct {
	DSOBase  string
	FuncName string
	HaveFunc bool
}

type dsoEntry struct {
	image *elfimage.Image
	err   error
}

// Resolver owns the procmap cache and the DSO-by-pathname cache for
// one process.
type Resolver struct {
	maps *procmap.Cache
	dsos map[string]*dsoEntry

	libFilter *filter.Library
	funFilter *filter.Function
}

func New(libFilter *filter.Library, funFilter *filter.Function) *Resolver {
	return &Resolver{
		maps:      procmap.New(),
		dsos:      make(map[string]*dsoEntry),
		libFilter: libFilter,
		funFilter: funFilter,
	}
}

// Resolve resolves pc. suppressed is true when the library or function
// filter rejected the call outright; such calls must not count toward
// the caller's depth accounting.
func (r *Resolver) Resolve(pc uintptr) (res Resolution, suppressed bool) {
	mapping, ok := r.maps.Lookup(pc)
	if !ok {
		return Resolution{}, true
	}

	base, report := r.libFilter.Check(mapping.Path)
	if !report {
		return Resolution{}, true
	}

	entry := r.dsoFor(mapping.Path)
	if entry.err != nil {
		if !r.funFilter.Check("", false) {
			return Resolution{}, true
		}
		return Resolution{DSOBase: base}, false
	}

	name, found := entry.image.ClosestSymbol(uint64(pc), uint64(mapping.Base))

	if !r.funFilter.Check(name, found) {
		return Resolution{}, true
	}
	return Resolution{DSOBase: base, FuncName: name, HaveFunc: found}, false
}

// dsoFor returns the cached image for path, opening and parsing it on
// first use. A failed open/parse is never cached: per §7, the object
// is retried on the next call, since a transient cause (the file
// appearing mid-load, a permissions race) shouldn't permanently mark
// it unresolvable.
func (r *Resolver) dsoFor(path string) *dsoEntry {
	if e, ok := r.dsos[path]; ok {
		return e
	}

	im, err := elfimage.Open(path)
	if err != nil {
		return &dsoEntry{err: err}
	}

	e := &dsoEntry{image: im}
	r.dsos[path] = e
	return e
}
