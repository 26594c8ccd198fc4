// Package signalcmd implements "gotracyctl signal", which toggles
// tracing in a running target by sending it its configured trigger
// signal — the out-of-process equivalent of the target receiving
// GOTRACY_SIGNAL itself.
package signalcmd

import (
	"fmt"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/go-tracy/tracy/cmd/gotracyctl/options"
	"github.com/go-tracy/tracy/pkg/engine"
)

func NewCommand(o *options.CommonOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "signal <pid>",
		Short:             "Send the configured trigger signal to a running target",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(_ *cobra.Command, args []string) error {
			pid, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid pid %q", args[0])
			}

			sig, ok := engine.ResolveConfig().SignalTrigger()
			if !ok {
				return errors.New("GOTRACY_SIGNAL is not set in this process's environment")
			}

			if err := unix.Kill(pid, syscall.Signal(sig)); err != nil {
				return errors.Wrapf(err, "signaling pid %d", pid)
			}

			fmt.Printf("sent signal %d to pid %d\n", sig, pid)
			return nil
		},
	}

	return cmd
}
