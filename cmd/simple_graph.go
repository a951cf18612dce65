package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var simpleGraphCmd = &cobra.Command{
	Use:   "simple-graph <id>",
	Short: "Generates the fixed fallback pipeline graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService("")
		if err != nil {
			return err
		}
		g, err := svc.SimpleGraph(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: %d nodes, %d edges\n", args[0], len(g.Nodes), len(g.Edges))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simpleGraphCmd)
}
