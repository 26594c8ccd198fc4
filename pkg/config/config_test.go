package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tracy/tracy/pkg/config"
)

func TestMaxDepthUnsetIsUnlimited(t *testing.T) {
	t.Setenv("GOTRACY_MAXDEPTH", "")
	c := config.New()
	_, limited := c.MaxDepth()
	require.False(t, limited)
}

func TestMaxDepthParsesPositiveInt(t *testing.T) {
	t.Setenv("GOTRACY_MAXDEPTH", "7")
	c := config.New()
	n, limited := c.MaxDepth()
	require.True(t, limited)
	require.Equal(t, 7, n)
}

func TestMaxDepthInvalidIsUnlimited(t *testing.T) {
	t.Setenv("GOTRACY_MAXDEPTH", "not-a-number")
	c := config.New()
	_, limited := c.MaxDepth()
	require.False(t, limited)
}

func TestSignalTriggerYMeansSigprof(t *testing.T) {
	t.Setenv("GOTRACY_SIGNAL", "y")
	c := config.New()
	sig, ok := c.SignalTrigger()
	require.True(t, ok)
	require.Equal(t, 27, sig)
}

func TestSignalTriggerUnsetMeansNone(t *testing.T) {
	c := config.New()
	_, ok := c.SignalTrigger()
	require.False(t, ok)
}

func TestLibraryFilterIncludeWinsOverExclude(t *testing.T) {
	t.Setenv("GOTRACY_INLIBS", "libc.so")
	t.Setenv("GOTRACY_EXLIBS", "libm.so")
	c := config.New()
	list, isWhitelist, reportAll := c.LibraryFilter()
	require.False(t, reportAll)
	require.True(t, isWhitelist)
	require.NotNil(t, list)
}

func TestLibraryFilterReportsAllWhenUnset(t *testing.T) {
	c := config.New()
	_, _, reportAll := c.LibraryFilter()
	require.True(t, reportAll)
}

func TestLogFnameDefaultsTrue(t *testing.T) {
	c := config.New()
	require.True(t, c.LogFname())
}

func TestLogFnameFalseWhenNotStartingWithOne(t *testing.T) {
	t.Setenv("GOTRACY_LOG_FNAME", "0")
	c := config.New()
	require.False(t, c.LogFname())
}

func TestEachAccessorCachesAfterFirstRead(t *testing.T) {
	t.Setenv("GOTRACY_ASYNC", "1")
	c := config.New()
	require.True(t, c.Async())

	t.Setenv("GOTRACY_ASYNC", "0")
	// Still true: resolved at most once per variable per process.
	require.True(t, c.Async())
}
