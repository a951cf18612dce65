// Package cache memoizes analysis results per project, keyed by the
// fingerprint of the tree they were computed from.
package cache

import (
	"sync"
	"time"

	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
)

type AnalysisCacheInterface interface {
	Get(projectID, fingerprint string) (*models.AnalysisResult, bool)
	Set(projectID, fingerprint string, result *models.AnalysisResult)
	Invalidate(projectID string)
	Clear()
	GetMetrics() *CacheMetrics
}

type AnalysisCache struct {
	entries map[string]*models.CacheEntry
	config  *CacheConfig
	metrics *CacheMetrics
	mutex   sync.RWMutex
	now     func() time.Time
}

func NewAnalysisCache(config *CacheConfig) *AnalysisCache {
	if config == nil {
		config = DefaultCacheConfig()
	}
	cache := &AnalysisCache{
		entries: make(map[string]*models.CacheEntry),
		config:  config,
		metrics: &CacheMetrics{},
		now:     time.Now,
	}

	logger.Debug("AnalysisCache: created with MaxEntries=%d, TTL=%v",
		config.MaxEntries, config.DefaultTTL)

	return cache
}

// Get returns the cached analysis of projectID if it was computed from a tree
// with the same fingerprint and has not expired. Stale entries are dropped.
func (ac *AnalysisCache) Get(projectID, fingerprint string) (*models.AnalysisResult, bool) {
	ac.mutex.RLock()
	entry, exists := ac.entries[projectID]
	ac.mutex.RUnlock()

	if !exists {
		ac.incrementMisses()
		logger.Debug("AnalysisCache: miss for %s - entry not found", projectID)
		return nil, false
	}

	if !entry.IsValid(fingerprint) {
		logger.Debug("AnalysisCache: miss for %s - tree modified", projectID)
		ac.Invalidate(projectID)
		ac.incrementMisses()
		return nil, false
	}

	if ac.isExpired(entry) {
		logger.Debug("AnalysisCache: miss for %s - entry expired", projectID)
		ac.Invalidate(projectID)
		ac.incrementMisses()
		return nil, false
	}

	ac.incrementHits()
	logger.Debug("AnalysisCache: hit for %s", projectID)
	return entry.Result, true
}

func (ac *AnalysisCache) Set(projectID, fingerprint string, result *models.AnalysisResult) {
	entry := models.NewCacheEntry(projectID, fingerprint, result)
	entry.CreatedAt = ac.now()

	ac.mutex.Lock()
	defer ac.mutex.Unlock()

	if _, replacing := ac.entries[projectID]; !replacing && len(ac.entries) >= ac.config.MaxEntries {
		logger.Debug("AnalysisCache: full, evicting oldest entry")
		ac.evictOldest()
	}

	ac.entries[projectID] = entry
	logger.Debug("AnalysisCache: stored analysis for %s", projectID)
}

func (ac *AnalysisCache) Invalidate(projectID string) {
	ac.mutex.Lock()
	defer ac.mutex.Unlock()

	if _, exists := ac.entries[projectID]; exists {
		delete(ac.entries, projectID)
		ac.metrics.Invalidations++
		logger.Debug("AnalysisCache: invalidated %s", projectID)
	}
}

func (ac *AnalysisCache) Clear() {
	ac.mutex.Lock()
	defer ac.mutex.Unlock()

	entriesCount := len(ac.entries)
	ac.entries = make(map[string]*models.CacheEntry)
	ac.metrics.Invalidations += int64(entriesCount)
	logger.Info("AnalysisCache: cleared, invalidated %d entries", entriesCount)
}

func (ac *AnalysisCache) GetMetrics() *CacheMetrics {
	ac.mutex.RLock()
	defer ac.mutex.RUnlock()

	metrics := *ac.metrics
	metrics.TotalEntries = len(ac.entries)
	metrics.CalculateHitRate()
	return &metrics
}

func (ac *AnalysisCache) LogStats() {
	metrics := ac.GetMetrics()
	logger.Debug("AnalysisCache: Hits=%d, Misses=%d, Hit Rate=%.1f%%, Total Entries=%d, Invalidations=%d",
		metrics.Hits, metrics.Misses, metrics.HitRate, metrics.TotalEntries, metrics.Invalidations)
}

func (ac *AnalysisCache) isExpired(entry *models.CacheEntry) bool {
	return ac.now().Sub(entry.CreatedAt) > ac.config.DefaultTTL
}

func (ac *AnalysisCache) evictOldest() {
	var oldestID string
	var oldestTime time.Time

	for id, entry := range ac.entries {
		if oldestID == "" || entry.CreatedAt.Before(oldestTime) {
			oldestID = id
			oldestTime = entry.CreatedAt
		}
	}

	if oldestID != "" {
		delete(ac.entries, oldestID)
		ac.metrics.Invalidations++
		logger.Debug("AnalysisCache: evicted oldest entry %s", oldestID)
	}
}

func (ac *AnalysisCache) incrementHits() {
	ac.mutex.Lock()
	defer ac.mutex.Unlock()
	ac.metrics.Hits++
}

func (ac *AnalysisCache) incrementMisses() {
	ac.mutex.Lock()
	defer ac.mutex.Unlock()
	ac.metrics.Misses++
}

var _ AnalysisCacheInterface = (*AnalysisCache)(nil)
