package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tracy/tracy/pkg/config"
	"github.com/go-tracy/tracy/pkg/filter"
	"github.com/go-tracy/tracy/pkg/resolver"
)

func TestResolveUnmappedAddressIsSuppressed(t *testing.T) {
	cfg := config.New()
	r := resolver.New(filter.NewLibrary(cfg), filter.NewFunction(cfg))

	_, suppressed := r.Resolve(0)
	require.True(t, suppressed)
}

func TestResolveUnmappedAddressWithLibraryBlacklistIsSuppressed(t *testing.T) {
	// A library blacklist is configured, but resolving pc 0 misses
	// procmap before the library filter is consulted, so this documents
	// that Resolve doesn't panic when filters are configured but no
	// mapping covers the address.
	t.Setenv("GOTRACY_EXLIBS", "anything.so")
	cfg := config.New()
	r := resolver.New(filter.NewLibrary(cfg), filter.NewFunction(cfg))

	_, suppressed := r.Resolve(0)
	require.True(t, suppressed)
}
