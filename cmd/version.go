/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/tristendillon/codemap/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Codemap",
	Long: `Prints the Codemap release, the Go toolchain it was built with and,
when the binary was built from a checkout, the VCS revision.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Codemap %s\n", version.Version)

		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		fmt.Fprintf(out, "  go:       %s\n", info.GoVersion)
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision", "vcs.time", "vcs.modified":
				fmt.Fprintf(out, "  %-9s %s\n", setting.Key[len("vcs."):]+":", setting.Value)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
