package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/btree/internal/core/observability/log"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Build a tree and tick it",
	Long:  `Builds the tree in <file> and evaluates it --ticks times against the particle lattice, printing every result.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cfg, err := newRuntime(cmd, args[0])
		if err != nil {
			return err
		}
		defer func() { _ = rt.Server.Hub().Close() }()

		out := cmd.OutOrStdout()
		for i := uint64(0); i < cfg.Ticks; i++ {
			if err = cmd.Context().Err(); err != nil {
				return err
			}
			if err = rt.Loop.Tick(); err != nil {
				rt.Logger.Warn("tick failed", log.Error(err))
			}
			fmt.Fprintf(out, "%s tick %d: %t\n", rt.Tree.Name(), i+1, rt.System.Last())
		}
		fmt.Fprintf(out, "%d/%d ticks succeeded\n", rt.System.Successes(), rt.System.Runs())
		return nil
	},
}

func init() {
	runCmd.Flags().Uint64("ticks", 1, "Number of ticks to run")
	rootCmd.AddCommand(runCmd)
}
