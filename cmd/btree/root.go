package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/btree/internal/config"
	"github.com/zeusync/btree/internal/core/bt"
	"github.com/zeusync/btree/internal/core/observability/log"
	"github.com/zeusync/btree/internal/injector"
)

var rootCmd = &cobra.Command{
	Use:           "btree",
	Short:         "btree runs declarative behavior trees",
	Long:          `btree builds behavior trees from JSON or YAML files and ticks them against a particle lattice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML host configuration")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed shared by the lattice and every node (0 seeds from the clock)")
}

// loadConfig reads --config and applies any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if f := flags.Lookup("ticks"); f != nil && f.Changed {
		cfg.Ticks, _ = flags.GetUint64("ticks")
	}
	if f := flags.Lookup("interval"); f != nil && f.Changed {
		cfg.Interval, _ = flags.GetDuration("interval")
	}
	if f := flags.Lookup("listen"); f != nil && f.Changed {
		cfg.Listen, _ = flags.GetString("listen")
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newRuntime(cmd *cobra.Command, path string) (*injector.Runtime, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	spec, err := bt.Load(path)
	if err != nil {
		return nil, config.Config{}, err
	}
	rt, err := injector.InitializeRuntime(cfg, spec)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("build %s: %w", path, err)
	}
	rt.Logger.Info("tree loaded",
		log.String("path", path),
		log.String("tree", spec.Title),
		log.Int("nodes", spec.Root.Count()),
		log.Uint64("fingerprint", spec.Fingerprint()),
		log.Int64("seed", cfg.Seed),
	)
	return rt, cfg, nil
}

// buildStatic builds a tree for inspection only; its selectors always take
// the first branch.
func buildStatic(path string) (*bt.TreeSpec, *bt.Tree, error) {
	spec, err := bt.Load(path)
	if err != nil {
		return nil, nil, err
	}
	tree, err := bt.NewBuilder(bt.OracleFunc(func() int { return 0 })).BuildTree(spec)
	if err != nil {
		return nil, nil, err
	}
	return spec, tree, nil
}
