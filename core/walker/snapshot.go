package walker

import (
	"crypto/md5"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tristendillon/codemap/core/models"
)

// NestedMarkers are paths below the root, inside pruned directories, whose
// presence the detectors check. Their state is captured at scan time.
var NestedMarkers = []string{".github/workflows"}

type cachedContent struct {
	text string
	ok   bool
}

// Snapshot is the result of one scan. File contents are read lazily and
// memoized, so a Snapshot must not be shared between goroutines.
type Snapshot struct {
	Root        string
	Files       []models.DiscoveredFile
	FileTypes   map[string]int
	EntryPoints []string
	Tree        *models.TreeNode

	paths        []string
	dirs         []string
	rootEntries  map[string]bool
	markers      map[string]bool
	maxFileBytes int64
	contents     map[string]cachedContent
}

func newSnapshot(root string, maxFileBytes int64) *Snapshot {
	return &Snapshot{
		Root:         root,
		Files:        []models.DiscoveredFile{},
		FileTypes:    make(map[string]int),
		EntryPoints:  []string{},
		rootEntries:  make(map[string]bool),
		markers:      make(map[string]bool),
		maxFileBytes: maxFileBytes,
		contents:     make(map[string]cachedContent),
	}
}

func (s *Snapshot) addDir(rel string) {
	s.dirs = append(s.dirs, rel)
}

// addRootEntry records a name directly under the root, pruned or not.
func (s *Snapshot) addRootEntry(name string, isDir bool) {
	s.rootEntries[name] = isDir
}

func (s *Snapshot) captureMarkers() {
	for _, rel := range NestedMarkers {
		if info, err := os.Stat(s.abs(rel)); err == nil {
			s.markers[rel] = info.IsDir()
		}
	}
}

func (s *Snapshot) add(rel, name string, info fs.FileInfo) {
	f := newDiscoveredFile(rel, name, info)
	s.Files = append(s.Files, f)
	s.paths = append(s.paths, rel)
	s.FileTypes[f.Ext]++
	if isEntryPoint(name) {
		s.EntryPoints = append(s.EntryPoints, rel)
	}
}

func (s *Snapshot) abs(rel string) string {
	if rel == "" {
		return s.Root
	}
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

func (s *Snapshot) TotalFiles() int {
	return len(s.Files)
}

// Paths returns the indexed relative paths in walk order.
func (s *Snapshot) Paths() []string {
	return s.paths
}

// Read returns the text of the file at rel. Invalid UTF-8 is dropped. Any
// failure, including exceeding the size limit, reports ok=false.
func (s *Snapshot) Read(rel string) (string, bool) {
	if c, seen := s.contents[rel]; seen {
		return c.text, c.ok
	}

	c := s.load(rel)
	s.contents[rel] = c
	return c.text, c.ok
}

func (s *Snapshot) load(rel string) cachedContent {
	full := s.abs(rel)
	if s.maxFileBytes > 0 {
		info, err := os.Stat(full)
		if err != nil || info.Size() > s.maxFileBytes {
			return cachedContent{}
		}
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return cachedContent{}
	}
	return cachedContent{text: strings.ToValidUTF8(string(data), ""), ok: true}
}

// RootExists reports whether rel exists under the root, file or directory,
// as seen by the scan.
func (s *Snapshot) RootExists(rel string) bool {
	_, ok := s.rootKind(rel)
	return ok
}

// RootDir reports whether rel is a directory under the root.
func (s *Snapshot) RootDir(rel string) bool {
	isDir, ok := s.rootKind(rel)
	return ok && isDir
}

func (s *Snapshot) rootKind(rel string) (isDir bool, ok bool) {
	rel = strings.TrimSuffix(filepath.ToSlash(filepath.Clean(rel)), "/")
	if !strings.Contains(rel, "/") {
		isDir, ok = s.rootEntries[rel]
		return isDir, ok
	}
	if isDir, ok = s.markers[rel]; ok {
		return isDir, ok
	}
	info, err := os.Stat(s.abs(rel))
	if err != nil {
		return false, false
	}
	return info.IsDir(), true
}

// RootFile reads a regular file at the project root.
func (s *Snapshot) RootFile(name string) (string, bool) {
	info, err := os.Stat(s.abs(name))
	if err != nil || info.IsDir() {
		return "", false
	}
	return s.Read(name)
}

// Fingerprint hashes everything an analysis reads from the tree: the path,
// size and modification time of every indexed file, every visited directory,
// the entries directly under the root and the nested markers. Two scans of an
// unchanged tree produce the same value.
func (s *Snapshot) Fingerprint() string {
	hash := md5.New()
	for _, f := range s.Files {
		fmt.Fprintf(hash, "f\x00%s\x00%d\x00%d\n", f.Path, f.Size, f.ModTime.UnixNano())
	}
	for _, dir := range s.dirs {
		fmt.Fprintf(hash, "d\x00%s\n", dir)
	}

	names := make([]string, 0, len(s.rootEntries))
	for name := range s.rootEntries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(hash, "r\x00%s\x00%t\n", name, s.rootEntries[name])
	}

	for _, rel := range NestedMarkers {
		isDir, ok := s.markers[rel]
		fmt.Fprintf(hash, "m\x00%s\x00%t\x00%t\n", rel, ok, isDir)
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
