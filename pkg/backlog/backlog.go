// Package backlog implements the async-mode scratch file: a record of
// raw instruction-pointer values logged during a run so that symbol
// resolution can be deferred to process exit.
package backlog

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Backlog is a created-then-unlinked temporary file: its directory
// entry is gone the instant Open returns, so the file's content
// vanishes with the process, same as the original's mkstemp+unlink.
type Backlog struct {
	file *os.File
}

// Open creates the scratch file and immediately unlinks it.
func Open() (*Backlog, error) {
	f, err := os.CreateTemp("", "gotracy.*")
	if err != nil {
		return nil, errors.Wrap(err, "creating backlog scratch file")
	}
	if err := os.Remove(f.Name()); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "unlinking backlog scratch file")
	}
	return &Backlog{file: f}, nil
}

// Record appends one raw address to the backlog. Duplicates are not
// deduplicated; the eventual SYMTAB consumer tolerates them.
func (b *Backlog) Record(addr uint64) error {
	return binary.Write(b.file, binary.LittleEndian, addr)
}

// Each rewinds the backlog and invokes fn once per recorded address,
// in the order they were written.
func (b *Backlog) Each(fn func(addr uint64) error) error {
	if _, err := b.file.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewinding backlog")
	}

	buf := make([]byte, 8)
	for {
		if _, err := io.ReadFull(b.file, buf); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "reading backlog record")
		}
		if err := fn(binary.LittleEndian.Uint64(buf)); err != nil {
			return err
		}
	}
}

// Close releases the backlog's file descriptor; its content is
// already unreachable from the filesystem.
func (b *Backlog) Close() error {
	return b.file.Close()
}
