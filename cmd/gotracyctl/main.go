// Command gotracyctl is the companion CLI for a running gotracy-preloaded
// target: send it its trigger signal, inspect the configuration a
// launcher is about to export, or watch a target's liveness.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-tracy/tracy/cmd/gotracyctl/describeconfig"
	"github.com/go-tracy/tracy/cmd/gotracyctl/options"
	"github.com/go-tracy/tracy/cmd/gotracyctl/signalcmd"
	"github.com/go-tracy/tracy/cmd/gotracyctl/watch"
	"github.com/go-tracy/tracy/internal/settings"
)

func newRootCmd(o *options.CommonOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               settings.CmdName + "ctl",
		Short:             "gotracyctl controls and inspects a gotracy-preloaded target",
		DisableAutoGenTag: true,
	}

	cmd.AddCommand(signalcmd.NewCommand(o))
	cmd.AddCommand(describeconfig.NewCommand())
	cmd.AddCommand(watch.NewCommand())

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New(log.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts := options.NewCommonOptions(
		options.WithContext(ctx),
		options.WithLogger(logger),
	)

	root := newRootCmd(opts)
	root.SetContext(ctx)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
