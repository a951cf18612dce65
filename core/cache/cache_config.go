package cache

import (
	"time"

	"github.com/tristendillon/codemap/core/config"
)

type CacheConfig struct {
	MaxEntries int           `json:"max_entries"`
	DefaultTTL time.Duration `json:"default_ttl"`
}

func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		MaxEntries: 100,
		DefaultTTL: 15 * time.Minute,
	}
}

// ConfigFrom adapts the cache section of codemap.yaml. Non-positive values
// keep the defaults.
func ConfigFrom(c config.Cache) *CacheConfig {
	cfg := DefaultCacheConfig()
	if c.MaxEntries > 0 {
		cfg.MaxEntries = c.MaxEntries
	}
	if c.TTL > 0 {
		cfg.DefaultTTL = c.TTL
	}
	return cfg
}

type CacheMetrics struct {
	Hits          int64   `json:"hits"`
	Misses        int64   `json:"misses"`
	Invalidations int64   `json:"invalidations"`
	TotalEntries  int     `json:"total_entries"`
	HitRate       float64 `json:"hit_rate"`
}

func (m *CacheMetrics) CalculateHitRate() {
	total := m.Hits + m.Misses
	if total > 0 {
		m.HitRate = float64(m.Hits) / float64(total) * 100
	} else {
		m.HitRate = 0
	}
}
