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
	"github.com/tristendillon/codemap/core/detector"
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/service"
)

var rootCmd = &cobra.Command{
	Use:   "codemap",
	Short: "Inventory a source tree and map it to a workflow graph.",
	Long: `Codemap walks an extracted project, detects its type, features, gaps and
technology stack, and turns the result into a node/edge workflow graph.
Every result is written as JSON under the configured store directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.SetLevel(logger.ParseLevel(logLevel))
		if logfile == "" {
			return nil
		}
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logHandle = f
		logger.AddWriterForAll(f)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogFile()
	},
}

var logfile string
var logLevel string
var verbose bool

// logHandle is the open --logfile, if any.
var logHandle *os.File

func Execute() {
	err := rootCmd.Execute()
	if closeErr := closeLogFile(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		os.Exit(1)
	}
}

func closeLogFile() error {
	if logHandle == nil {
		return nil
	}
	f := logHandle
	logHandle = nil
	logger.RemoveWriterForAll(f)
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Minimum log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}

// projectID defaults to the base name of the project directory.
func projectID(id, path string) (string, error) {
	if id != "" {
		return id, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return filepath.Base(abs), nil
}

func newService(mode string) (*service.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	var opts []service.Option
	if mode != "" {
		opts = append(opts, service.WithMode(detector.Mode(mode)))
	}
	svc, err := service.New(cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
