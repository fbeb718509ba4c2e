package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/btree/internal/core/bt/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the tree as a Mermaid diagram",
	Long:  `Builds the tree in <file> and prints a Mermaid flowchart (graph TD) of its nodes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tree, err := buildStatic(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(tree))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
