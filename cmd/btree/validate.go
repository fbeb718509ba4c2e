package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/btree/pkg/concurrent"
)

var errValidation = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check tree files for errors",
	Long:  `Loads and builds every file, reporting missing keys, unknown node types and out-of-range probabilities.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports := make([]string, len(args))
		indexes := make([]int, len(args))
		for i := range indexes {
			indexes[i] = i
		}
		errs := concurrent.Each(indexes, 4, func(i int) error {
			spec, _, err := buildStatic(args[i])
			if err != nil {
				return err
			}
			reports[i] = fmt.Sprintf("%s: ok (%q, %d nodes, fingerprint %016x)", args[i], spec.Title, spec.Root.Count(), spec.Fingerprint())
			return nil
		})

		failed := false
		for i, err := range errs {
			if err != nil {
				failed = true
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", args[i], err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), reports[i])
		}
		if failed {
			return errValidation
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
