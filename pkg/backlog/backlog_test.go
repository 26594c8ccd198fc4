package backlog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tracy/tracy/pkg/backlog"
)

func TestRecordAndEachRoundTrip(t *testing.T) {
	b, err := backlog.Open()
	require.NoError(t, err)
	defer b.Close()

	want := []uint64{0x1000, 0x2000, 0x1000, 0x3000}
	for _, addr := range want {
		require.NoError(t, b.Record(addr))
	}

	var got []uint64
	require.NoError(t, b.Each(func(addr uint64) error {
		got = append(got, addr)
		return nil
	}))

	require.Equal(t, want, got)
}

func TestEachOnEmptyBacklogCallsNothing(t *testing.T) {
	b, err := backlog.Open()
	require.NoError(t, err)
	defer b.Close()

	calls := 0
	require.NoError(t, b.Each(func(uint64) error {
		calls++
		return nil
	}))
	require.Equal(t, 0, calls)
}
