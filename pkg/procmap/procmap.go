// Package procmap stands in for the load-address half of dladdr(3),
// which Go has no binding for: it parses this process's own
// /proc/self/maps to answer "which mapped object, loaded at what base,
// covers this address?"
package procmap

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Mapping is one executable mapping from /proc/self/maps: the object
// it came from, its load base, and the [start, end) range it occupies
// in this process's address space.
type Mapping struct {
	Start, End uintptr
	Base       uintptr
	Path       string
}

// Cache holds the mappings read from /proc/self/maps the last time it
// was refreshed. It re-reads only when a lookup misses every cached
// range, since new executable mappings (a dlopen()ed library) are the
// only thing that invalidates it.
type Cache struct {
	mu       sync.Mutex
	mappings []Mapping
}

func New() *Cache {
	return &Cache{}
}

// Lookup returns the executable mapping covering pc, reading
// /proc/self/maps on first use and again on any cache miss.
func (c *Cache) Lookup(pc uintptr) (Mapping, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := find(c.mappings, pc); ok {
		return m, true
	}
	if err := c.refreshLocked(); err != nil {
		return Mapping{}, false
	}
	return find(c.mappings, pc)
}

func find(mappings []Mapping, pc uintptr) (Mapping, bool) {
	for _, m := range mappings {
		if pc >= m.Start && pc < m.End {
			return m, true
		}
	}
	return Mapping{}, false
}

func (c *Cache) refreshLocked() error {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return errors.Wrap(err, "opening /proc/self/maps")
	}
	defer f.Close()

	var mappings []Mapping
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m, ok, err := parseLine(sc.Text())
		if err != nil {
			return err
		}
		if ok {
			mappings = append(mappings, m)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading /proc/self/maps")
	}

	c.mappings = mappings
	return nil
}

// parseLine parses one /proc/self/maps line. Non-executable mappings
// and mappings with no backing path (anonymous, [heap], [stack],
// [vdso], and the like) are not mappings any DSO cache entry could
// ever be opened from, so they're skipped rather than returned.
func parseLine(line string) (Mapping, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return Mapping{}, false, nil
	}

	perms := fields[1]
	if len(perms) < 3 || perms[2] != 'x' {
		return Mapping{}, false, nil
	}

	path := fields[5]
	if path == "" || path[0] == '[' {
		return Mapping{}, false, nil
	}

	addrs := strings.SplitN(fields[0], "-", 2)
	if len(addrs) != 2 {
		return Mapping{}, false, nil
	}
	start, err := strconv.ParseUint(addrs[0], 16, 64)
	if err != nil {
		return Mapping{}, false, errors.Wrap(err, "parsing mapping start address")
	}
	end, err := strconv.ParseUint(addrs[1], 16, 64)
	if err != nil {
		return Mapping{}, false, errors.Wrap(err, "parsing mapping end address")
	}
	offset, err := strconv.ParseUint(fields[2], 16, 64)
	if err != nil {
		return Mapping{}, false, errors.Wrap(err, "parsing mapping offset")
	}

	// The load base is the mapping's start address minus its file
	// offset: the first (offset 0) segment of the object is what
	// st_value is measured from.
	base := uintptr(start) - uintptr(offset)

	return Mapping{
		Start: uintptr(start),
		End:   uintptr(end),
		Base:  base,
		Path:  path,
	}, true, nil
}
