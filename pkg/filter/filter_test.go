package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tracy/tracy/pkg/config"
	"github.com/go-tracy/tracy/pkg/filter"
)

func TestLibraryReportsAllByDefault(t *testing.T) {
	f := filter.NewLibrary(config.New())
	base, report := f.Check("/usr/lib/libc.so.6")
	require.True(t, report)
	require.Equal(t, "libc.so.6", base)
}

func TestLibraryWhitelistOnlyReportsMembers(t *testing.T) {
	t.Setenv("GOTRACY_INLIBS", "libc.so.6")
	f := filter.NewLibrary(config.New())

	_, report := f.Check("/usr/lib/libc.so.6")
	require.True(t, report)

	_, report = f.Check("/usr/lib/libm.so.6")
	require.False(t, report)
}

func TestLibraryBlacklistSuppressesMembers(t *testing.T) {
	t.Setenv("GOTRACY_EXLIBS", "libc.so.6")
	f := filter.NewLibrary(config.New())

	_, report := f.Check("/usr/lib/libc.so.6")
	require.False(t, report)

	_, report = f.Check("/usr/lib/libm.so.6")
	require.True(t, report)
}

func TestFunctionNullNameWhitelistSuppresses(t *testing.T) {
	t.Setenv("GOTRACY_INFUNS", "foo_*")
	f := filter.NewFunction(config.New())
	require.False(t, f.Check("", false))
}

func TestFunctionNullNameBlacklistReports(t *testing.T) {
	t.Setenv("GOTRACY_EXFUNS", "foo_*")
	f := filter.NewFunction(config.New())
	require.True(t, f.Check("", false))
}

func TestFunctionWhitelistMatchesPattern(t *testing.T) {
	t.Setenv("GOTRACY_INFUNS", "foo_*:bar_(alpha:beta)")
	f := filter.NewFunction(config.New())
	require.True(t, f.Check("foo_x", true))
	require.True(t, f.Check("bar_alpha", true))
	require.False(t, f.Check("baz", true))
}
