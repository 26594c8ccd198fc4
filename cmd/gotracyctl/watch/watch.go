// Package watch implements "gotracyctl watch <pid>": polls a target
// process's liveness at a fixed interval and renders a terminal-width-
// aware one-line status until the target exits or the command is
// interrupted.
package watch

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/go-tracy/tracy/internal/output"
)

type options struct {
	interval time.Duration
}

func NewCommand() *cobra.Command {
	o := new(options)

	cmd := &cobra.Command{
		Use:               "watch <pid>",
		Short:             "Poll a traced process and print its liveness status until it exits",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pid int
			if _, err := fmt.Sscanf(args[0], "%d", &pid); err != nil {
				return fmt.Errorf("invalid pid %q: %w", args[0], err)
			}
			return run(cmd.Context(), pid, o.interval)
		},
	}
	cmd.Flags().DurationVar(&o.interval, "interval", 500*time.Millisecond, "Poll interval")

	return cmd
}

func run(ctx context.Context, pid int, interval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	started := time.Now()
	signalsSent := 0

	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				fmt.Println()
				return nil
			case <-ticker.C:
				alive := processAlive(pid)
				line := output.PrettyWatchStatus(alive, time.Since(started), signalsSent)
				printLine(line)
				if !alive {
					fmt.Println()
					return nil
				}
			}
		}
	})

	return g.Wait()
}

func printLine(line string) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		fmt.Print(line)
		return
	}
	if len(line) > width {
		line = line[:width]
	}
	fmt.Print(line)
}

func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
