package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
)

// ErrProjectNotFound is the only error a scan propagates for a bad root.
var ErrProjectNotFound = errors.New("project path not found")

// IgnoredDirs are pruned wherever they appear, in addition to dot-directories.
var IgnoredDirs = []string{"node_modules", "__pycache__", ".git", "build", "dist"}

// TreeDepth bounds the display tree; nodes at this depth are not emitted.
const TreeDepth = 3

var entryPointNames = map[string]bool{
	"main.py": true, "app.py": true, "index.py": true, "__main__.py": true,
	"main.js": true, "index.js": true, "app.js": true,
	"main.ts": true, "index.ts": true, "app.ts": true,
	"package.json": true, "requirements.txt": true, "setup.py": true,
}

type TreeScanner interface {
	Scan(ctx context.Context, root string) (*Snapshot, error)
}

type TreeScannerImpl struct {
	Exclude      []string
	MaxFileBytes int64
}

func NewTreeScanner(exclude []string, maxFileBytes int64) *TreeScannerImpl {
	valid := make([]string, 0, len(exclude))
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			logger.Warn("TreeScanner: ignoring invalid exclude pattern %q", pattern)
			continue
		}
		valid = append(valid, pattern)
	}
	return &TreeScannerImpl{
		Exclude:      valid,
		MaxFileBytes: maxFileBytes,
	}
}

// Scan indexes every file under root in lexical depth-first order. Directories
// are visited from an explicit stack; unreadable ones are skipped.
func (s *TreeScannerImpl) Scan(ctx context.Context, root string) (*Snapshot, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrProjectNotFound, root)
	}

	snap := newSnapshot(root, s.MaxFileBytes)

	stack := []string{""}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// os.ReadDir sorts entries by name.
		entries, err := os.ReadDir(snap.abs(dir))
		if err != nil {
			logger.Debug("TreeScanner: skipping unreadable directory %q: %v", dir, err)
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			rel := path.Join(dir, entry.Name())
			isDir, info, ok := s.resolve(snap, rel, entry)
			if !ok {
				continue
			}
			if dir == "" {
				snap.addRootEntry(entry.Name(), isDir)
			}

			if isDir {
				if entry.Type()&fs.ModeSymlink != 0 {
					continue
				}
				if s.shouldSkipDir(rel, entry.Name()) {
					logger.Debug("TreeScanner: pruning %s", rel)
					continue
				}
				subdirs = append(subdirs, rel)
				snap.addDir(rel)
				continue
			}

			if s.isExcluded(rel) {
				continue
			}
			snap.add(rel, entry.Name(), info)
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	snap.captureMarkers()
	snap.Tree = s.buildTree(root)
	logger.Debug("TreeScanner: indexed %d files under %s", len(snap.Files), root)
	return snap, nil
}

// resolve follows symlinks one level so a link to a file is indexed as that
// file; links to directories are reported as directories and never descended.
func (s *TreeScannerImpl) resolve(snap *Snapshot, rel string, entry fs.DirEntry) (bool, fs.FileInfo, bool) {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(snap.abs(rel))
		if err != nil {
			return false, nil, false
		}
		return info.IsDir(), info, true
	}
	if entry.IsDir() {
		return true, nil, true
	}
	if !entry.Type().IsRegular() {
		return false, nil, false
	}
	info, err := entry.Info()
	if err != nil {
		return false, nil, true
	}
	return false, info, true
}

func (s *TreeScannerImpl) shouldSkipDir(rel, name string) bool {
	if IsPrunedDir(name) {
		return true
	}
	return s.isExcluded(rel)
}

func (s *TreeScannerImpl) isExcluded(rel string) bool {
	for _, pattern := range s.Exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// extension mirrors the usual notion of a suffix: dotfiles such as ".env"
// have none, and a trailing dot is not an extension.
func extension(name string) string {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	if ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}

func isEntryPoint(name string) bool {
	return entryPointNames[strings.ToLower(name)]
}

var _ TreeScanner = (*TreeScannerImpl)(nil)

func newDiscoveredFile(rel, name string, info fs.FileInfo) models.DiscoveredFile {
	f := models.DiscoveredFile{
		Path: rel,
		Name: name,
		Ext:  extension(name),
	}
	if info != nil {
		f.Size = info.Size()
		f.ModTime = info.ModTime()
	}
	return f
}
