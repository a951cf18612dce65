package models

import (
	"time"
)

// CacheEntry memoizes one analysis of a project, keyed by the fingerprint of
// the tree it was computed from.
type CacheEntry struct {
	ProjectID   string          `json:"project_id"`
	Fingerprint string          `json:"fingerprint"`
	Result      *AnalysisResult `json:"result"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewCacheEntry(projectID, fingerprint string, result *AnalysisResult) *CacheEntry {
	return &CacheEntry{
		ProjectID:   projectID,
		Fingerprint: fingerprint,
		Result:      result,
		CreatedAt:   time.Now(),
	}
}

// IsValid reports whether the entry still describes a tree with the given fingerprint.
func (ce *CacheEntry) IsValid(fingerprint string) bool {
	return ce.Result != nil && ce.Fingerprint == fingerprint
}
