package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeusync/btree/internal/core/observability/log"
	"github.com/zeusync/btree/pkg/concurrent"
)

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Tick a tree continuously and stream its notices",
	Long: `Runs the host loop every --interval and exposes the tree over HTTP:
/ws streams notices and tick results, /metrics serves Prometheus metrics,
/tree returns the Mermaid diagram and /healthz reports liveness.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cfg, err := newRuntime(cmd, args[0])
		if err != nil {
			return err
		}
		// The config file's tick count is for run; serve only stops early when asked to.
		ticks, _ := cmd.Flags().GetUint64("ticks")

		rt.Logger.Info("serving tree",
			log.String("tree", rt.Tree.Name()),
			log.String("listen", cfg.Listen),
			log.Duration("interval", cfg.Interval),
		)

		err = concurrent.Run(cmd.Context(),
			func(ctx context.Context) error {
				if err := rt.Loop.Run(ctx, ticks); err != nil {
					return err
				}
				// A finite run keeps serving its final state until shutdown.
				<-ctx.Done()
				return ctx.Err()
			},
			rt.Server.Start,
		)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	serveCmd.Flags().Uint64("ticks", 0, "Stop ticking after this many ticks (0 runs until shutdown)")
	serveCmd.Flags().Duration("interval", 500*time.Millisecond, "Time between ticks")
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}
