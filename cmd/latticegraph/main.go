// Command latticegraph replays a scripted sequence of block placements,
// removals, and recalculation points through a registry.Registry and
// prints the resulting network/node/edge table. It exists as a
// runnable, inspectable harness over the library, not a product surface
// (compare gaissmai-bart/cmd and defistate-client-go/cmd/client).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "latticegraph",
		Short: "Replay a scripted sequence of block events against a lattice network registry",
		Long: `latticegraph drives a registry.Registry[component.IntCapacity] through a JSON
event script of block placements, removals, and recalculation points, then
prints a table describing every resulting network, its nodes, and its edges.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every event at debug level")

	root.AddCommand(newRunCmd(&verbose))
	return root
}

func newRunCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script.json]",
		Short: "Replay an event script and print the resulting world state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := loadScript(args[0])
			if err != nil {
				return fmt.Errorf("loading script: %w", err)
			}

			level := slog.LevelInfo
			if *verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			reg := newRegistry(logger, prometheus.DefaultRegisterer)
			store := newComponentStore()

			if err := replay(cmd.OutOrStdout(), reg, store, script); err != nil {
				return err
			}
			printWorld(cmd.OutOrStdout(), reg)
			return nil
		},
	}
}
