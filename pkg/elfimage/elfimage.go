// Package elfimage opens the ELF image backing a loaded shared object
// or the main executable, and offers the one operation the resolver
// needs from it: the symbol defined closest to, and at or below, a
// given address.
//
// Section parsing goes through debug/elf for the bounds-checked typed
// view it gives over the section header table; the raw symbol records
// underneath are decoded by hand, because the closest-preceding-symbol
// search needs the untranslated st_value and the st_name string-table
// offset, not the name debug/elf would already have resolved for us.
package elfimage

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// symbol is one decoded STT_* entry: its raw string-table offset and
// its raw st_value, exactly as stored in the ELF image.
type symbol struct {
	nameOff uint32
	value   uint64
}

// Image is a parsed, memory-mapped ELF file. It is retained for the
// life of the process and never unmapped: DSOs are never unloaded for
// the lifetime of a traced program, so there is nothing to reclaim.
type Image struct {
	path   string
	data   []byte
	class  elf.Class
	strtab []byte
	syms   []symbol
}

// Open mmaps and parses path. If path cannot be opened and is not
// absolute, it falls back to /proc/self/exe: the main executable
// frequently shows up under a relative argv[0]-derived path.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if len(path) > 0 && path[0] == '/' {
			return nil, errors.Wrapf(err, "opening %s", path)
		}
		f, err = os.Open("/proc/self/exe")
		if err != nil {
			return nil, errors.Wrap(err, "opening /proc/self/exe fallback")
		}
		path = "/proc/self/exe"
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat")
	}
	size := fi.Size()
	if size == 0 {
		return nil, errors.New("empty file")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(err, "mmap")
	}

	im, err := parse(path, data)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}
	return im, nil
}

func parse(path string, data []byte) (*Image, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], []byte{0x7f, 'E', 'L', 'F'}) {
		return nil, ErrNotELF
	}

	ef, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parsing section headers")
	}

	var strSec, symSec *elf.Section
	for _, sec := range ef.Sections {
		switch sec.Type {
		case elf.SHT_STRTAB:
			// Last STRTAB by header order wins, matching the original's
			// unconditional overwrite in its section-walking loop.
			strSec = sec
		case elf.SHT_SYMTAB:
			if symSec != nil {
				return nil, ErrNoSymtab
			}
			symSec = sec
		}
	}
	if strSec == nil {
		return nil, ErrNoStrtab
	}
	if symSec == nil {
		return nil, ErrNoSymtab
	}

	entSize := symEntSize(ef.Class)
	if symSec.Entsize != uint64(entSize) {
		return nil, ErrSymtabEntSize
	}

	strtab, err := sectionBytes(data, strSec)
	if err != nil {
		return nil, errors.Wrap(err, "string table")
	}
	symtab, err := sectionBytes(data, symSec)
	if err != nil {
		return nil, errors.Wrap(err, "symbol table")
	}

	syms, err := decodeSymbols(symtab, ef.Class, ef.ByteOrder)
	if err != nil {
		return nil, errors.Wrap(err, "decoding symbols")
	}

	return &Image{path: path, data: data, class: ef.Class, strtab: strtab, syms: syms}, nil
}

func sectionBytes(data []byte, sec *elf.Section) ([]byte, error) {
	start := int64(sec.Offset)
	end := start + int64(sec.Size)
	if start < 0 || end < start || end > int64(len(data)) {
		return nil, errors.New("section out of range of the mapped image")
	}
	return data[start:end], nil
}

func symEntSize(class elf.Class) int {
	if class == elf.ELFCLASS64 {
		return 24 // sizeof(Elf64_Sym)
	}
	return 16 // sizeof(Elf32_Sym)
}

func decodeSymbols(raw []byte, class elf.Class, order binary.ByteOrder) ([]symbol, error) {
	entSize := symEntSize(class)
	if len(raw)%entSize != 0 {
		return nil, errors.New("symbol table size not a multiple of entry size")
	}

	n := len(raw) / entSize
	syms := make([]symbol, n)
	for i := 0; i < n; i++ {
		rec := raw[i*entSize : (i+1)*entSize]
		if class == elf.ELFCLASS64 {
			// Elf64_Sym: Name(4) Info(1) Other(1) Shndx(2) Value(8) Size(8)
			syms[i] = symbol{
				nameOff: order.Uint32(rec[0:4]),
				value:   order.Uint64(rec[8:16]),
			}
		} else {
			// Elf32_Sym: Name(4) Value(4) Size(4) Info(1) Other(1) Shndx(2)
			syms[i] = symbol{
				nameOff: order.Uint32(rec[0:4]),
				value:   uint64(order.Uint32(rec[4:8])),
			}
		}
	}
	return syms, nil
}

// Path returns the filesystem path this image was opened from (after
// any /proc/self/exe fallback substitution).
func (im *Image) Path() string { return im.path }

// ClosestSymbol returns the name of the symbol defined closest to, and
// at or below, pc.
//
// Per symbol, st_value is either an absolute address (the main
// executable's own symtab) or an offset from loadBase (everything
// dlopen()ed or preloaded): whichever it is decides whether pc itself,
// or pc-loadBase, is the address comparable against that entry. This
// is decided independently for every candidate, exactly as the
// original does it, rather than once per DSO, since nothing here
// guarantees every entry in one symtab shares a convention.
//
// Candidates whose name begins with '$', or whose name offset falls
// outside the string table, are skipped.
func (im *Image) ClosestSymbol(pc, loadBase uint64) (string, bool) {
	var closest *symbol
	var bestGap uint64

	for i := range im.syms {
		sym := &im.syms[i]

		var eddr uint64
		if sym.value > loadBase {
			eddr = pc
		} else {
			eddr = pc - loadBase
		}
		if eddr < sym.value {
			continue
		}

		gap := eddr - sym.value
		if closest != nil && gap >= bestGap {
			continue
		}
		if uint64(sym.nameOff) >= uint64(len(im.strtab)) {
			continue
		}
		if im.strtab[sym.nameOff] == '$' {
			continue
		}
		closest = sym
		bestGap = gap
		if gap == 0 {
			break
		}
	}

	if closest == nil {
		return "", false
	}

	end := bytes.IndexByte(im.strtab[closest.nameOff:], 0)
	if end < 0 {
		return "", false
	}
	return string(im.strtab[closest.nameOff : closest.nameOff+uint32(end)]), true
}
