package elfimage

import "github.com/pkg/errors"

var (
	// ErrNotELF is returned when the image's magic bytes don't match
	// any known ELF class.
	ErrNotELF = errors.New("not an ELF image")

	// ErrNoStrtab is returned when no SHT_STRTAB section was found.
	ErrNoStrtab = errors.New("no string table section")

	// ErrNoSymtab is returned when no SHT_SYMTAB section was found, or
	// more than one was present.
	ErrNoSymtab = errors.New("no symbol table section, or more than one")

	// ErrSymtabEntSize is returned when the SYMTAB section's entry
	// size doesn't match the ELF class's symbol record size.
	ErrSymtabEntSize = errors.New("symtab entry size doesn't match ELF class")
)
