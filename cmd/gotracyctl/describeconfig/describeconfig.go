// Package describeconfig implements "gotracyctl describe-config": it
// reads this process's own GOTRACY_* environment and prints the
// configuration gotracy would resolve from it, as JSON, so a launcher
// script can sanity-check its environment before ever preloading the
// engine.
package describeconfig

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-tracy/tracy/internal/settings"
	"github.com/go-tracy/tracy/pkg/engine"
)

type snapshot struct {
	SignalTrigger  *int   `json:"signal_trigger,omitempty"`
	LibraryFilter  string `json:"library_filter"`
	FunctionFilter string `json:"function_filter"`
	MaxDepth       *int   `json:"max_depth,omitempty"`
	Async          bool   `json:"async"`
	EntriesOnly    bool   `json:"entries_only"`
	LogTime        bool   `json:"log_time"`
	LogTID         bool   `json:"log_tid"`
	LogFname       bool   `json:"log_fname"`
	Indent         int    `json:"indent"`
}

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "describe-config",
		Short:             fmt.Sprintf("Print the %s configuration resolved from this process's environment", settings.CmdName),
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return describe()
		},
	}
}

func describe() error {
	cfg := engine.ResolveConfig()

	s := snapshot{
		Async:       cfg.Async(),
		EntriesOnly: cfg.EntriesOnly(),
		LogTime:     cfg.LogTime(),
		LogTID:      cfg.LogTID(),
		LogFname:    cfg.LogFname(),
		Indent:      cfg.Indent(),
	}

	if sig, ok := cfg.SignalTrigger(); ok {
		s.SignalTrigger = &sig
	}
	if depth, limited := cfg.MaxDepth(); limited {
		s.MaxDepth = &depth
	}

	_, libWhitelist, libReportAll := cfg.LibraryFilter()
	s.LibraryFilter = filterMode(libReportAll, libWhitelist)

	_, funWhitelist, funReportAll := cfg.FunctionFilter()
	s.FunctionFilter = filterMode(funReportAll, funWhitelist)

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func filterMode(reportAll, whitelist bool) string {
	switch {
	case reportAll:
		return "report-all"
	case whitelist:
		return "whitelist"
	default:
		return "blacklist"
	}
}
