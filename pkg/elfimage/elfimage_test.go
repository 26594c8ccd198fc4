package elfimage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tracy/tracy/pkg/elfimage"
)

// The test binary itself is a real on-disk ELF image, used as a
// fixture without shipping one. It carries a symbol table only when
// linked without -s: a binary built with "go test -c" has one, while
// plain "go test" links with -s -w and Open then fails with ErrNoSymtab.
func TestOpenSelf(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)

	im, err := elfimage.Open(self)
	require.NoError(t, err)
	require.Equal(t, self, im.Path())
}

func TestOpenRejectsNonELF(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-elf")
	require.NoError(t, err)
	_, err = f.WriteString("just some text, definitely not an ELF header")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = elfimage.Open(f.Name())
	require.Error(t, err)
}

func TestClosestSymbolBogusAddressNotFound(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)

	im, err := elfimage.Open(self)
	require.NoError(t, err)

	// Asserts the lookup doesn't panic on a bogus address and reports
	// not-found cleanly.
	_, ok := im.ClosestSymbol(0, 0)
	require.False(t, ok)
}
