package walker

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tristendillon/codemap/core/models"
)

// buildTree mirrors the scan's pruning rule, also hiding dotfiles, and stops
// TreeDepth levels below root. A work queue keeps deep trees off the call stack.
func (s *TreeScannerImpl) buildTree(root string) *models.TreeNode {
	name := filepath.Base(root)
	if abs, err := filepath.Abs(root); err == nil {
		name = filepath.Base(abs)
	}

	type item struct {
		node  *models.TreeNode
		rel   string
		depth int
	}

	top := models.NewTreeNode(name, models.KindDirectory)
	queue := []item{{node: top, rel: "", depth: 0}}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if it.depth+1 >= TreeDepth {
			continue
		}

		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(it.rel)))
		if err != nil {
			continue
		}

		for _, entry := range entries {
			childName := entry.Name()
			rel := path.Join(it.rel, childName)
			if strings.HasPrefix(childName, ".") || isIgnoredName(childName) || s.isExcluded(rel) {
				continue
			}

			kind := models.KindFile
			if info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err == nil && info.IsDir() {
				kind = models.KindDirectory
			}

			child := models.NewTreeNode(childName, kind)
			it.node.Children = append(it.node.Children, child)

			if kind == models.KindDirectory && entry.IsDir() {
				queue = append(queue, item{node: child, rel: rel, depth: it.depth + 1})
			}
		}
	}

	return top
}

// IsPrunedDir reports whether a directory with this name is never descended
// into, wherever it appears.
func IsPrunedDir(name string) bool {
	return strings.HasPrefix(name, ".") || isIgnoredName(name)
}

func isIgnoredName(name string) bool {
	for _, ignored := range IgnoredDirs {
		if name == ignored {
			return true
		}
	}
	return false
}
