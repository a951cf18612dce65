package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tristendillon/codemap/core/logger"
)

// GenerationInfo records which tree and settings a persisted graph was
// built from.
type GenerationInfo struct {
	ProjectID   string    `json:"project_id"`
	Fingerprint string    `json:"fingerprint"`
	ConfigHash  string    `json:"config_hash"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GenerationCache tracks graph generation so an unchanged project is not
// regenerated.
type GenerationCache struct {
	entries map[string]*GenerationInfo
	mutex   sync.RWMutex
}

func NewGenerationCache() *GenerationCache {
	return &GenerationCache{
		entries: make(map[string]*GenerationInfo),
	}
}

func (gc *GenerationCache) MarkGenerated(projectID, fingerprint, configHash string) error {
	if projectID == "" || fingerprint == "" {
		return fmt.Errorf("project id and fingerprint cannot be empty")
	}

	gc.mutex.Lock()
	defer gc.mutex.Unlock()

	gc.entries[projectID] = &GenerationInfo{
		ProjectID:   projectID,
		Fingerprint: fingerprint,
		ConfigHash:  configHash,
		GeneratedAt: time.Now(),
	}
	logger.Debug("GenerationCache: marked %s as generated", projectID)
	return nil
}

// NeedsRegeneration reports whether the graph of projectID is missing or was
// built from a different tree or configuration, and why.
func (gc *GenerationCache) NeedsRegeneration(projectID, fingerprint, configHash string) (bool, string) {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()

	entry, exists := gc.entries[projectID]
	if !exists {
		return true, "no generation record found"
	}
	if entry.Fingerprint != fingerprint {
		return true, fmt.Sprintf("tree changed (fingerprint: %s -> %s)", short(entry.Fingerprint), short(fingerprint))
	}
	if entry.ConfigHash != configHash {
		return true, "configuration changed"
	}

	logger.Debug("GenerationCache: %s does not need regeneration", projectID)
	return false, ""
}

func (gc *GenerationCache) GetGenerationInfo(projectID string) (*GenerationInfo, bool) {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()

	entry, exists := gc.entries[projectID]
	if !exists {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

func (gc *GenerationCache) InvalidateGeneration(projectID string) {
	gc.mutex.Lock()
	defer gc.mutex.Unlock()

	if _, exists := gc.entries[projectID]; exists {
		delete(gc.entries, projectID)
		logger.Debug("GenerationCache: invalidated generation record for %s", projectID)
	}
}

func (gc *GenerationCache) GetGeneratedProjects() []string {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()

	projects := make([]string, 0, len(gc.entries))
	for id := range gc.entries {
		projects = append(projects, id)
	}
	sort.Strings(projects)
	return projects
}

func (gc *GenerationCache) Clear() {
	gc.mutex.Lock()
	defer gc.mutex.Unlock()

	gc.entries = make(map[string]*GenerationInfo)
	logger.Debug("GenerationCache: cleared all entries")
}

func short(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
