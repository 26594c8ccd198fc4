package config

import "github.com/pkg/errors"

var (
	// ErrBothFilterListsIgnored is written into the (never fatal)
	// diagnostic emitted when both include/exclude variables were set
	// for the same filter; include always wins, per SPEC_FULL.md §3.
	ErrBothFilterListsIgnored = errors.New("both include and exclude set, include takes precedence")

	// ErrSignalNotUnderstood marks a GOTRACY_SIGNAL value that parsed
	// to neither "y"/"Y" nor a positive integer.
	ErrSignalNotUnderstood = errors.New("signal value not understood")
)
