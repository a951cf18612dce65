// Package watcher re-runs a callback when files under a project change,
// coalescing bursts of events into one call.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
	"github.com/tristendillon/codemap/core/walker"
)

type FileWatcher interface {
	Watch(ctx context.Context) error
	Close() error
}

type FileWatcherImpl struct {
	FileWatcher *models.FileWatcher
}

func NewFileWatcher(rootDir string, excludePaths []string, debounce time.Duration) (*FileWatcherImpl, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", rootDir, err)
	}
	fw, err := models.NewFileWatcher(abs, excludePaths, debounce)
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	logger.Debug("Watcher: excluding paths: %v", excludePaths)
	return &FileWatcherImpl{
		FileWatcher: fw,
	}, nil
}

func (fw *FileWatcherImpl) AddOnStartFunc(f func() error)  { fw.FileWatcher.AddOnStartFunc(f) }
func (fw *FileWatcherImpl) AddOnChangeFunc(f func() error) { fw.FileWatcher.AddOnChangeFunc(f) }
func (fw *FileWatcherImpl) AddOnCloseFunc(f func() error)  { fw.FileWatcher.AddOnCloseFunc(f) }

// Watch blocks until ctx is done or the underlying watcher fails.
func (fw *FileWatcherImpl) Watch(ctx context.Context) error {
	if err := fw.addWatchersRecursively(fw.FileWatcher.RootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	if err := fw.FileWatcher.OnStart(); err != nil {
		logger.Error("Watcher.OnStart failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.FileWatcher.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if fw.shouldExcludePath(event.Name) {
				continue
			}
			if event.Op == fsnotify.Chmod {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					if err := fw.addWatchersRecursively(event.Name); err != nil {
						logger.Warn("Watcher: %v", err)
					}
				}
			}

			fw.debounceGenerate()

		case err, ok := <-fw.FileWatcher.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcherImpl) debounceGenerate() {
	fw.FileWatcher.Mutex.Lock()
	defer fw.FileWatcher.Mutex.Unlock()

	if fw.FileWatcher.DebounceTimer != nil {
		fw.FileWatcher.DebounceTimer.Stop()
	}

	fw.FileWatcher.DebounceTimer = time.AfterFunc(fw.FileWatcher.Debounce, func() {
		logger.Debug("File changes detected, re-analyzing...")
		if err := fw.FileWatcher.OnChange(); err != nil {
			logger.Error("Watcher.OnChange failed: %v", err)
		}
	})
}

func (fw *FileWatcherImpl) Close() error {
	fw.FileWatcher.Mutex.Lock()
	defer fw.FileWatcher.Mutex.Unlock()

	if fw.FileWatcher.DebounceTimer != nil {
		fw.FileWatcher.DebounceTimer.Stop()
	}

	if err := fw.FileWatcher.OnClose(); err != nil {
		logger.Error("Watcher.OnClose failed: %v", err)
	}

	return fw.FileWatcher.Watcher.Close()
}

func (fw *FileWatcherImpl) relPath(path string) (string, bool) {
	rel, err := filepath.Rel(fw.FileWatcher.RootDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(filepath.Clean(rel)), true
}

// shouldExcludeDir applies the scanner's pruning rule to every component of
// a directory path, then the configured excludes.
func (fw *FileWatcherImpl) shouldExcludeDir(path string) bool {
	rel, ok := fw.relPath(path)
	if !ok {
		return true
	}
	if rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, "/") {
		if walker.IsPrunedDir(part) {
			return true
		}
	}
	return fw.matchesExclude(rel)
}

// shouldExcludePath decides whether an event on path can affect an analysis.
// Hidden files are still analysed, so only their parent directories are
// checked against the pruning rule. Entries directly under the root, such as
// .git or docs, are probed by the detectors and are not pruned.
func (fw *FileWatcherImpl) shouldExcludePath(path string) bool {
	rel, ok := fw.relPath(path)
	if !ok {
		return true
	}
	if rel == "." {
		return false
	}
	parts := strings.Split(rel, "/")
	for _, part := range parts[:len(parts)-1] {
		if walker.IsPrunedDir(part) {
			return true
		}
	}
	if len(parts) > 1 {
		for _, ignored := range walker.IgnoredDirs {
			if parts[len(parts)-1] == ignored {
				return true
			}
		}
	}
	return fw.matchesExclude(rel)
}

func (fw *FileWatcherImpl) matchesExclude(rel string) bool {
	for _, excludePath := range fw.FileWatcher.ExcludePaths {
		excludePath = filepath.ToSlash(filepath.Clean(excludePath))

		if rel == excludePath || strings.HasPrefix(rel, excludePath+"/") {
			return true
		}
		if matched, _ := doublestar.Match(excludePath, rel); matched {
			return true
		}
	}
	return false
}

func (fw *FileWatcherImpl) addWatchersRecursively(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Debug("Watcher: skipping %s: %v", path, err)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if fw.shouldExcludeDir(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := fw.FileWatcher.Watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}

var _ FileWatcher = (*FileWatcherImpl)(nil)
