/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/codemap/core/config"
	"github.com/tristendillon/codemap/core/logger"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default codemap.yaml",
	Long:  `Creates codemap.yaml in the working directory with the default settings.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		if _, err := os.Stat(filepath.Join(wd, config.FileName)); err == nil && !force {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Use --force to overwrite.\n", config.FileName)
			return nil
		}

		path, err := config.Write(wd, config.Default())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
