// Package store persists analysis and graph results as one JSON file per
// project and artifact.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
)

var (
	ErrNotFound  = errors.New("result not found")
	ErrInvalidID = errors.New("invalid project ID")
)

type Artifact string

const (
	ArtifactAnalysis    Artifact = "analysis"
	ArtifactGraph       Artifact = "workflow_graph"
	ArtifactSimpleGraph Artifact = "simple_graph"
)

type Store interface {
	SaveAnalysis(id string, result *models.AnalysisResult) error
	LoadAnalysis(id string) (*models.AnalysisResult, error)
	SaveGraph(id string, graph *models.GraphResult) error
	LoadGraph(id string) (*models.GraphResult, error)
	SaveSimpleGraph(id string, graph *models.GraphResult) error
	LoadSimpleGraph(id string) (*models.GraphResult, error)
	List() ([]string, error)
	Delete(id string) error
}

// FileStore keeps <id>_<artifact>.json files in a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates dir if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) Dir() string {
	return fs.dir
}

func (fs *FileStore) SaveAnalysis(id string, result *models.AnalysisResult) error {
	if result == nil {
		return errors.New("analysis cannot be nil")
	}
	return fs.save(id, ArtifactAnalysis, result)
}

func (fs *FileStore) LoadAnalysis(id string) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := fs.load(id, ArtifactAnalysis, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (fs *FileStore) SaveGraph(id string, graph *models.GraphResult) error {
	if graph == nil {
		return errors.New("graph cannot be nil")
	}
	return fs.save(id, ArtifactGraph, graph)
}

func (fs *FileStore) LoadGraph(id string) (*models.GraphResult, error) {
	var graph models.GraphResult
	if err := fs.load(id, ArtifactGraph, &graph); err != nil {
		return nil, err
	}
	return &graph, nil
}

func (fs *FileStore) SaveSimpleGraph(id string, graph *models.GraphResult) error {
	if graph == nil {
		return errors.New("graph cannot be nil")
	}
	return fs.save(id, ArtifactSimpleGraph, graph)
}

func (fs *FileStore) LoadSimpleGraph(id string) (*models.GraphResult, error) {
	var graph models.GraphResult
	if err := fs.load(id, ArtifactSimpleGraph, &graph); err != nil {
		return nil, err
	}
	return &graph, nil
}

// List returns the ids that have a stored analysis, sorted.
func (fs *FileStore) List() ([]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	suffix := "_" + string(ArtifactAnalysis) + ".json"
	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, suffix))
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes every artifact of id. Deleting an unknown id is ErrNotFound.
func (fs *FileStore) Delete(id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	removed := 0
	for _, artifact := range []Artifact{ArtifactAnalysis, ArtifactGraph, ArtifactSimpleGraph} {
		err := os.Remove(fs.path(id, artifact))
		if err == nil {
			removed++
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete %s %s: %w", artifact, id, err)
		}
	}
	if removed == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	logger.Debug("Store: deleted %d artifacts of %s", removed, id)
	return nil
}

// Path returns the file an artifact of id is stored in.
func (fs *FileStore) Path(id string, artifact Artifact) string {
	return fs.path(id, artifact)
}

func (fs *FileStore) path(id string, artifact Artifact) string {
	return filepath.Join(fs.dir, fmt.Sprintf("%s_%s.json", id, artifact))
}

func (fs *FileStore) save(id string, artifact Artifact, v any) error {
	if err := validateID(id); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", artifact, err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := fs.path(id, artifact)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", artifact, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", artifact, err)
	}

	logger.Debug("Store: saved %s", path)
	return nil
}

func (fs *FileStore) load(id string, artifact Artifact, v any) error {
	if err := validateID(id); err != nil {
		return err
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(fs.path(id, artifact))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s %s", ErrNotFound, artifact, id)
		}
		return fmt.Errorf("failed to read %s: %w", artifact, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", artifact, err)
	}
	return nil
}

// validateID keeps ids to a single path element.
func validateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
