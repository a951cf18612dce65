package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/watcher"
)

var watchID string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Re-analyze the project whenever it changes",
	Long:  `Watches <path> and regenerates its analysis and workflow graph on every change.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		id, err := projectID(watchID, root)
		if err != nil {
			return err
		}
		svc, cfg, err := newService("")
		if err != nil {
			return err
		}

		excludes := append([]string{}, cfg.Scan.Exclude...)
		if rel, ok := storeRelPath(root, cfg.Store.Dir); ok {
			excludes = append(excludes, rel)
		}

		fw, err := watcher.NewFileWatcher(root, excludes, cfg.Watch.Debounce)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		regenerate := func() error {
			g, err := svc.BuildGraphContext(ctx, id, root)
			if err != nil {
				return err
			}
			logger.Info("Regenerated %s: %d nodes, %d edges", id, len(g.Nodes), len(g.Edges))
			return nil
		}
		fw.AddOnStartFunc(func() error {
			logger.Info("Watching %s as %s", root, id)
			return regenerate()
		})
		fw.AddOnChangeFunc(regenerate)
		fw.AddOnCloseFunc(func() error {
			svc.LogCacheStats()
			logger.Info("Stopped watching %s", root)
			return nil
		})

		watchErr := fw.Watch(ctx)
		if err := fw.Close(); err != nil {
			logger.Debug("Watcher close: %v", err)
		}
		if watchErr != nil && watchErr != context.Canceled {
			return fmt.Errorf("failed to watch project: %w", watchErr)
		}
		return nil
	},
}

// storeRelPath reports where the store directory sits inside root, so writes
// to it do not retrigger the watcher.
func storeRelPath(root, storeDir string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absStore, err := filepath.Abs(storeDir)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absStore)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchID, "id", "", "Project id (defaults to the directory name)")
}
