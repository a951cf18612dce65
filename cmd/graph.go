/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/codemap/core/logger"
)

var graphID string

var graphCmd = &cobra.Command{
	Use:   "graph <path>",
	Short: "Generates the workflow graph for the project",
	Long:  `Analyzes the project at <path> and generates its workflow graph.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("graph called")
		id, err := projectID(graphID, args[0])
		if err != nil {
			return err
		}
		svc, _, err := newService("")
		if err != nil {
			return err
		}

		g, err := svc.BuildGraphContext(cmd.Context(), id, args[0])
		if err != nil {
			return fmt.Errorf("failed to generate graph: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: %d nodes, %d edges\n", id, len(g.Nodes), len(g.Edges))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringVar(&graphID, "id", "", "Project id (defaults to the directory name)")
}
